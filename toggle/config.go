package toggle

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailored-agentic-units/toggle/observability"
)

const defaultObserver = "noop"

// Config holds construction parameters resolvable from JSON. Observer is a
// name looked up in the observability registry.
//
// Example JSON:
//
//	{"name": "photo-1", "observer": "slog"}
type Config struct {
	Name     string `json:"name,omitempty"`
	Observer string `json:"observer,omitempty"`
}

// DefaultConfig returns an unnamed configuration using the "noop" observer.
func DefaultConfig() Config {
	return Config{
		Observer: defaultObserver,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// NewFromConfig creates a Toggle using the name and observer from cfg.
// Options override the config-derived settings.
func NewFromConfig[T any](cfg *Config, initial any, opts ...Option) (*Toggle[T], error) {
	observerName := cfg.Observer
	if observerName == "" {
		observerName = defaultObserver
	}

	observer, err := observability.GetObserver(observerName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	base := []Option{WithName(cfg.Name), WithObserver(observer)}
	return New[T](initial, append(base, opts...)...)
}
