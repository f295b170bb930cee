package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"starseek/internal/catalog"
	"starseek/internal/config"
	"starseek/internal/eventbus"
	"starseek/internal/ui"
)

// options holds command line settings that override the config file
type options struct {
	configPath     string
	sources        []string
	itemHeight     int
	viewportHeight int
	renderAhead    int
	debounce       time.Duration
	logFile        string
	writeConfig    bool
}

func main() {
	opts, flags := parseFlags(os.Args[1:])

	// Set up logging
	logFile, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := loadConfig(configSvc, opts.configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyOverrides(cfg, opts, flags)

	if opts.writeConfig {
		if err := configSvc.SaveToPath(cfg, config.FileName); err != nil {
			fmt.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", config.FileName)
		return
	}

	loader := catalog.NewLoaderService(bus, catalog.NewDefaultOpener(), catalog.Fields{
		Name: cfg.Catalog.NameField,
		Key:  cfg.Catalog.KeyField,
	})

	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg)
	if os.Getenv("STARSEEK_E2E_TEST") == "1" {
		uiModel.AnnounceReady()
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Forward catalog events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventCatalogLoadStarted,
		eventbus.EventSourceLoaded,
		eventbus.EventCatalogLoaded,
		eventbus.EventCatalogLoadFailed,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forward)
	}

	if err := loader.StartLoad(ctx, cfg.Catalog.Sources); err != nil {
		log.Printf("Failed to start catalog load: %v", err)
	}

	// Quit the program when interrupted
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	cancel()
	loader.StopLoad()
}

// parseFlags reads the command line
func parseFlags(args []string) (*options, *flag.FlagSet) {
	opts := &options{}
	flags := flag.NewFlagSet("starseek", flag.ExitOnError)
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default ./"+config.FileName+", then the user config)")
	flags.StringArrayVarP(&opts.sources, "source", "s", nil, "Catalog source: path, http(s):// URL or s3://bucket/key (repeatable)")
	flags.IntVar(&opts.itemHeight, "item-height", config.DefaultItemHeight, "Height of one result row")
	flags.IntVar(&opts.viewportHeight, "viewport-height", config.DefaultViewportHeight, "Height of the result viewport")
	flags.IntVar(&opts.renderAhead, "render-ahead", config.DefaultRenderAhead, "Rows materialized beyond the viewport")
	flags.DurationVar(&opts.debounce, "debounce", config.DefaultDebounceMS*time.Millisecond, "Quiet period before a query is searched")
	flags.StringVar(&opts.logFile, "log-file", "starseek.log", "Log file")
	flags.BoolVar(&opts.writeConfig, "write-config", false, "Write the effective config to ./"+config.FileName+" and exit")
	_ = flags.Parse(args)

	// Positional arguments are sources too
	opts.sources = append(opts.sources, flags.Args()...)
	return opts, flags
}

// loadConfig picks the explicit path, then ./.starseek.toml, then the user config
func loadConfig(configSvc config.ConfigService, path string) (*config.Config, error) {
	if path != "" {
		return configSvc.LoadFromPath(path)
	}

	if _, err := os.Stat(config.FileName); err == nil {
		cfg, err := configSvc.LoadFromPath(config.FileName)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded config from %s", config.FileName)
		return cfg, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", config.FileName, err)
	}

	return configSvc.Load()
}

// applyOverrides copies explicitly set flags over the loaded config
func applyOverrides(cfg *config.Config, opts *options, flags *flag.FlagSet) {
	if len(opts.sources) > 0 {
		cfg.Catalog.Sources = opts.sources
	}
	if flags.Changed("item-height") {
		cfg.Layout.ItemHeight = opts.itemHeight
	}
	if flags.Changed("viewport-height") {
		cfg.Layout.ViewportHeight = opts.viewportHeight
	}
	if flags.Changed("render-ahead") {
		cfg.Layout.RenderAhead = opts.renderAhead
	}
	if flags.Changed("debounce") {
		cfg.Layout.DebounceMS = int(opts.debounce / time.Millisecond)
	}
	cfg.Validate()
}
