package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"wastelookup/internal/catalog"
	"wastelookup/internal/config"
	"wastelookup/internal/eventbus"
	"wastelookup/internal/favorites"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Bus       eventbus.EventBus
	Config    *config.Config
	Catalog   *catalog.Store
	Favorites *favorites.Store
	ConfigErr error // config file problem; defaults are in use
	E2E       bool  // print the readiness marker for the pty tests
}

// warn reports a config problem on stderr for the non-interactive commands
func (d *Dependencies) warn() {
	if d.ConfigErr != nil {
		fmt.Fprintf(d.Stderr, "warning: %v (using defaults)\n", d.ConfigErr)
	}
}

// Globals are flags shared by every command. They override the config file.
type Globals struct {
	Config   string        `help:"Path to the config file." type:"path" placeholder:"FILE"`
	URL      string        `help:"Catalog endpoint URL." name:"url"`
	DataDir  string        `help:"Directory for favourites and the log file." name:"data-dir" type:"path" placeholder:"DIR"`
	Storage  string        `help:"Favourites backend (file or sqlite)." placeholder:"BACKEND"`
	Debounce time.Duration `help:"Quiet period before a keystroke search runs." placeholder:"DURATION"`
	LogFile  string        `help:"Log file path." name:"log-file" type:"path" placeholder:"FILE"`
}

// apply copies the flags that were set onto cfg and validates the result
func (g *Globals) apply(cfg *config.Config) error {
	if g.URL != "" {
		cfg.CatalogURL = g.URL
	}
	if g.DataDir != "" {
		cfg.Storage.Dir = g.DataDir
	}
	if g.Storage != "" {
		cfg.Storage.Backend = g.Storage
	}
	if g.Debounce > 0 {
		cfg.DebounceMillis = int(g.Debounce / time.Millisecond)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	TUI       TUICmd       `cmd:"" name:"tui" default:"1" help:"Start the interactive lookup (default)"`
	Search    SearchCmd    `cmd:"" help:"Print the items matching a query"`
	Favorites FavoritesCmd `cmd:"" aliases:"favourites" help:"List or change favourites"`
}

// TUICmd is the default interactive command.
type TUICmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Text to look for in item keywords"`
	Full  bool   `help:"Print the full guidance text instead of a summary"`
}

// FavoritesCmd groups the favourites subcommands.
type FavoritesCmd struct {
	List   FavoritesListCmd   `cmd:"" default:"1" help:"List favourites in the order they were added"`
	Toggle FavoritesToggleCmd `cmd:"" help:"Add or remove a favourite by exact title"`
}

// FavoritesListCmd is the "favorites list" subcommand.
type FavoritesListCmd struct{}

// FavoritesToggleCmd is the "favorites toggle" subcommand.
type FavoritesToggleCmd struct {
	Title string `arg:"" help:"Exact item title"`
}
