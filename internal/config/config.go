package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// AppName names the per-user config and data directory
	AppName = "wastelookup"

	// DefaultCatalogURL is the public waste wizard endpoint
	DefaultCatalogURL = "https://secure.toronto.ca/cc_sr_v1/data/swm_waste_wizard_APR?limit=1000"

	DefaultTimeoutMillis  = 10000
	DefaultDebounceMillis = 300

	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrNotFound is returned by LoadFromPath when no config file exists
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version        int             `toml:"version"`
	CatalogURL     string          `toml:"catalog_url"`
	TimeoutMillis  int             `toml:"timeout_ms"`
	DebounceMillis int             `toml:"debounce_ms"`
	Storage        StorageSettings `toml:"storage"`
	UISettings     UISettings      `toml:"ui"`
}

// StorageSettings selects where favourites are persisted
type StorageSettings struct {
	Backend string `toml:"backend"` // "file" or "sqlite"
	Dir     string `toml:"dir"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool `toml:"show_help"` // start with the full key help expanded
}

// Timeout returns the catalog request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMillis) * time.Millisecond
}

// Debounce returns the keystroke coalescing window
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if c.CatalogURL == "" {
		return fmt.Errorf("catalog_url must not be empty")
	}
	if c.TimeoutMillis < 0 {
		return fmt.Errorf("timeout_ms must not be negative")
	}
	if c.DebounceMillis < 0 {
		return fmt.Errorf("debounce_ms must not be negative")
	}
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// applyDefaults fills zero values left out of a partial config file
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.CatalogURL == "" {
		c.CatalogURL = def.CatalogURL
	}
	if c.TimeoutMillis == 0 {
		c.TimeoutMillis = def.TimeoutMillis
	}
	if c.DebounceMillis == 0 {
		c.DebounceMillis = def.DebounceMillis
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = def.Storage.Dir
	}
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewServiceAt creates a config service backed by path, or by the default
// config file when path is empty
func NewServiceAt(path string) Service {
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.toml")
	}
	return &configService{filePath: path}
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultDir returns the per-user directory holding config and favourites
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, AppName)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		CatalogURL:     DefaultCatalogURL,
		TimeoutMillis:  DefaultTimeoutMillis,
		DebounceMillis: DefaultDebounceMillis,
		Storage: StorageSettings{
			Backend: BackendFile,
			Dir:     DefaultDir(),
		},
	}
}
