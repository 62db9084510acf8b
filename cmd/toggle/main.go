package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tailored-agentic-units/toggle/observability"
	"github.com/tailored-agentic-units/toggle/toggle"
)

const defaultState = `{"selected": false, "value": {"id": 1, "name": "Fat Cat", "url": "http://netstorage.discovery.com/feeds/brightcove/asset-stills/apl/124161359038512825301401197_FAT_CAT.jpg"}}`

func main() {
	var (
		configFile = flag.String("config", "", "Path to toggle config JSON file")
		state      = flag.String("state", defaultState, "Initial state as a JSON object")
		name       = flag.String("name", "", "Toggle name (overrides config)")
		observer   = flag.String("observer", "", "Observer name (overrides config)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	cfg := toggle.DefaultConfig()
	if *configFile != "" {
		loaded, err := toggle.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	if *name != "" {
		cfg.Name = *name
	}
	if *observer != "" {
		cfg.Observer = *observer
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	item, err := newItem(&cfg, *state, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to create toggle: %v", err)
	}

	if err := item.run(os.Stdin, logger); err != nil {
		log.Fatalf("Failed to read commands: %v", err)
	}

	fmt.Fprintln(os.Stdout, item.render(item.toggle.State()))
}
