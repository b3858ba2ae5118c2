package main

import (
	"fmt"
	"os"
	"path/filepath"

	"wastelookup/internal/config"
	"wastelookup/internal/sqlite"
	"wastelookup/internal/storage"
)

// openStore opens the favourites backend selected by the config
func openStore(cfg *config.Config) (storage.Store, error) {
	dir := cfg.Storage.Dir

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		db := sqlite.NewStore(filepath.Join(dir, sqlite.FileName))
		if err := db.Open(); err != nil {
			return nil, fmt.Errorf("failed to open database in %q: %w", dir, err)
		}
		return db, nil

	case config.BackendFile:
		fs, err := storage.NewFileStore(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open data directory %q: %w", dir, err)
		}
		return fs, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
