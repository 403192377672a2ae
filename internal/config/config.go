// Package config manages the application configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Catalog store configuration
	Store StoreConfig `toml:"store"`

	// API server configuration
	Server ServerConfig `toml:"server"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// StoreConfig contains catalog store settings.
type StoreConfig struct {
	Path          string `toml:"path"`           // Path to the SQLite catalog store
	AutoMigrate   bool   `toml:"auto_migrate"`   // Apply schema migrations on open
	Watch         bool   `toml:"watch"`          // Refresh the catalog when the store changes
	WatchDebounce string `toml:"watch_debounce"` // Debounce for store change events (e.g. "1s")
}

// ServerConfig contains API server settings.
type ServerConfig struct {
	Port              int     `toml:"port"`                // Listen port
	RequestsPerSecond float64 `toml:"requests_per_second"` // Request rate cap (0 = unlimited)
	BurstSize         int     `toml:"burst_size"`          // Burst allowance above the cap
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:          "",
			AutoMigrate:   true,
			Watch:         true,
			WatchDebounce: "1s",
		},
		Server: ServerConfig{
			Port:              8080,
			RequestsPerSecond: 50,
			BurstSize:         100,
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".deckscope")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// DefaultStorePath returns the default location of the catalog store.
func DefaultStorePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".deckscope", "catalog.db"), nil
}

// Load loads the configuration from disk. Returns default config if file
// doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Store.WatchDebounce); err != nil {
		return fmt.Errorf("invalid watch debounce %q: %w", c.Store.WatchDebounce, err)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RequestsPerSecond < 0 {
		return fmt.Errorf("requests per second cannot be negative: %v", c.Server.RequestsPerSecond)
	}
	return nil
}

// GetWatchDebounce returns the store watch debounce as a duration.
func (c *Config) GetWatchDebounce() (time.Duration, error) {
	return time.ParseDuration(c.Store.WatchDebounce)
}
