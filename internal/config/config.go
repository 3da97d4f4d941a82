// Package config loads and saves tripcost settings and the rate table.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all tripcost configuration.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
	Rates      RateOverrides    `toml:"rates"`
}

// DefaultsConfig holds the starting values of the four trip inputs.
type DefaultsConfig struct {
	People     int     `toml:"people"`
	Days       int     `toml:"days"`
	SkiDays    int     `toml:"ski_days"`
	Activities float64 `toml:"activities"`
}

// DisplayConfig holds output formatting preferences.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Labels   string `toml:"labels"` // "en" or "de"
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			People: 6,
			Days:   7,
		},
		Display: DisplayConfig{
			Currency: "€",
			Labels:   "en",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripcost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tripcost")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
