// Package sqlite provides a SQLite-backed storage.Store for favourites.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"wastelookup/internal/storage"
)

// FileName is the database file created inside the data directory.
const FileName = "wastelookup.db"

// Ensure Store implements storage.Store at compile time.
var _ storage.Store = (*Store)(nil)

// Store keeps key-value pairs in a single kv table.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new Store with the given path.
// Use ":memory:" for an in-memory database.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (s *Store) Open() error {
	conn, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time; one connection also keeps
	// a ":memory:" database alive for the Store's lifetime.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if s.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	s.db = conn

	if err := s.createSchema(); err != nil {
		conn.Close()
		s.db = nil
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the stored value for key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s.db == nil {
		return "", false, errors.New("sqlite store is not open")
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value for key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.db == nil {
		return errors.New("sqlite store is not open")
	}
	if key == "" {
		return storage.ErrInvalidKey
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// createSchema creates the kv table if it doesn't exist.
func (s *Store) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}
