package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"wastelookup/internal/catalog"
	"wastelookup/internal/config"
	"wastelookup/internal/eventbus"
	"wastelookup/internal/favorites"
)

// logFileName is created in the data directory unless --log-file is given
const logFileName = "wastelookup.log"

func main() {
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

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP catalog fetcher. Set before calling Run().
	Fetcher catalog.Fetcher

	// Getenv looks up environment variables, os.Getenv by default.
	Getenv func(string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wastelookup"),
		kong.Description("Search Toronto's waste wizard and keep a list of favourites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The log file lives in the configured data directory, so the config is
	// read before anything may log
	configSvc := config.NewServiceAt(cli.Config)
	cfg, created, cfgErr := loadOrCreateConfig(configSvc)
	if err := cli.Globals.apply(cfg); err != nil {
		return err
	}

	// Set up logging; the terminal belongs to the UI
	closeLog, err := setupLogging(cli.LogFile, cfg.Storage.Dir)
	if err != nil {
		fmt.Fprintf(stderr, "Could not open log file: %v\n", err)
		prev := log.Writer()
		log.SetOutput(io.Discard)
		defer log.SetOutput(prev)
	} else {
		defer closeLog()
	}

	// Create event bus; closed before the log file
	bus := eventbus.New()
	defer bus.Close()
	logEvents(bus)

	switch {
	case cfgErr != nil:
		log.Printf("Config problem at %s, using defaults: %v", configSvc.Path(), cfgErr)
	case created:
		bus.Publish(eventbus.ConfigSavedEvent{Path: configSvc.Path()})
	default:
		bus.Publish(eventbus.ConfigLoadedEvent{Path: configSvc.Path()})
	}

	kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = catalog.NewHTTPFetcher(catalog.WithTimeout(cfg.Timeout()))
	}
	cat := catalog.NewStore(fetcher, cfg.CatalogURL)
	cat.SetEventBus(bus)

	favs := favorites.Load(ctx, kv)
	favs.SetEventBus(bus)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Bus:       bus,
		Config:    cfg,
		Catalog:   cat,
		Favorites: favs,
		ConfigErr: cfgErr,
		E2E:       m.getenv("WASTELOOKUP_E2E_TEST") == "1",
	}
	return kongCtx.Run(deps)
}

func (m *Main) getenv(key string) string {
	if m.Getenv == nil {
		return os.Getenv(key)
	}
	return m.Getenv(key)
}

// loadOrCreateConfig loads the config file, writing the defaults out when
// there is none and reporting that it did. An unreadable file yields the
// defaults and the error.
func loadOrCreateConfig(svc config.Service) (*config.Config, bool, error) {
	path := svc.Path()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := config.DefaultConfig()
		if err := svc.Save(cfg); err != nil {
			return cfg, false, fmt.Errorf("failed to write default config: %w", err)
		}
		return cfg, true, nil
	}

	cfg, err := svc.Load()
	if err != nil {
		return config.DefaultConfig(), false, err
	}
	return cfg, false, nil
}

// setupLogging redirects the standard logger to a file and returns the
// function that restores it
func setupLogging(path, dataDir string) (func(), error) {
	if path == "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, err
		}
		path = filepath.Join(dataDir, logFileName)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	prev := log.Writer()
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(prev)
		logFile.Close()
	}, nil
}
