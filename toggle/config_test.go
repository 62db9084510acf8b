package toggle_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tailored-agentic-units/toggle/observability"
	"github.com/tailored-agentic-units/toggle/toggle"
)

func TestDefaultConfig(t *testing.T) {
	cfg := toggle.DefaultConfig()

	if cfg.Observer != "noop" {
		t.Errorf("got Observer %q, want %q", cfg.Observer, "noop")
	}
	if cfg.Name != "" {
		t.Errorf("got Name %q, want empty", cfg.Name)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := toggle.DefaultConfig()

	cfg.Merge(&toggle.Config{Name: "photo-1", Observer: "slog"})

	if cfg.Name != "photo-1" {
		t.Errorf("got Name %q, want %q", cfg.Name, "photo-1")
	}
	if cfg.Observer != "slog" {
		t.Errorf("got Observer %q, want %q", cfg.Observer, "slog")
	}
}

func TestConfig_Merge_ZeroValuesPreserveDefaults(t *testing.T) {
	cfg := toggle.DefaultConfig()

	cfg.Merge(&toggle.Config{})

	if cfg.Observer != "noop" {
		t.Errorf("got Observer %q, want %q (preserved default)", cfg.Observer, "noop")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")

	content := `{"name": "photo-1"}`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := toggle.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "photo-1" {
		t.Errorf("got Name %q, want %q", cfg.Name, "photo-1")
	}
	if cfg.Observer != "noop" {
		t.Errorf("got Observer %q, want %q", cfg.Observer, "noop")
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := toggle.LoadConfig("/nonexistent/path/config.json")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.json")

	if err := os.WriteFile(configPath, []byte("{invalid}"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := toggle.LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestNewFromConfig(t *testing.T) {
	var events []observability.Event
	observability.RegisterObserver("toggle-config-test", observability.ObserverFunc(
		func(ctx context.Context, e observability.Event) {
			events = append(events, e)
		},
	))
	t.Cleanup(func() { observability.RegisterObserver("toggle-config-test", nil) })

	cfg := &toggle.Config{Name: "photo-1", Observer: "toggle-config-test"}

	tg, err := toggle.NewFromConfig[string](cfg, map[string]any{"value": "v", "selected": false})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if tg.Name() != "photo-1" {
		t.Errorf("got Name %q, want %q", tg.Name(), "photo-1")
	}
	if len(events) != 1 || events[0].Type != toggle.EventCreate {
		t.Errorf("got events %+v, want one create event", events)
	}
}

func TestNewFromConfig_OptionsOverride(t *testing.T) {
	cfg := &toggle.Config{Name: "from-config"}

	tg, err := toggle.NewFromConfig[int](cfg, toggle.State[int]{Value: 1}, toggle.WithName("from-option"))
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if tg.Name() != "from-option" {
		t.Errorf("got Name %q, want %q", tg.Name(), "from-option")
	}
}

func TestNewFromConfig_UnknownObserver(t *testing.T) {
	cfg := &toggle.Config{Observer: "does-not-exist"}

	_, err := toggle.NewFromConfig[string](cfg, map[string]any{"value": "v", "selected": false})
	if !errors.Is(err, observability.ErrUnknownObserver) {
		t.Errorf("got error %v, want ErrUnknownObserver", err)
	}
}

func TestNewFromConfig_MalformedState(t *testing.T) {
	cfg := toggle.DefaultConfig()

	_, err := toggle.NewFromConfig[string](&cfg, map[string]any{"selected": false})
	if !errors.Is(err, toggle.ErrMalformedState) {
		t.Errorf("got error %v, want ErrMalformedState", err)
	}
}
