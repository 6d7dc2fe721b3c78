// Package config loads tasksheet settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"tasksheet/internal/sheet"
)

// Config holds all tasksheet configuration.
type Config struct {
	// Amount billed per estimated hour
	HourlyRate float64 `yaml:"hourly_rate" env:"TASKSHEET_HOURLY_RATE"`

	// View opened at startup: morning, evening, complete or custom
	DefaultView string `yaml:"default_view" env:"TASKSHEET_DEFAULT_VIEW"`

	// Terminals narrower than this get the accordion layout
	CompactWidth int `yaml:"compact_width" env:"TASKSHEET_COMPACT_WIDTH"`

	// Seed sources, tried in order: database, file, bundled data
	SeedDB   string `yaml:"seed_db" env:"TASKSHEET_SEED_DB"`
	SeedFile string `yaml:"seed_file" env:"TASKSHEET_SEED_FILE"`

	// Logging
	LogFile  string `yaml:"log_file" env:"TASKSHEET_LOG_FILE"`
	LogLevel string `yaml:"log_level" env:"TASKSHEET_LOG_LEVEL"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		HourlyRate:   sheet.DefaultHourlyRate,
		DefaultView:  string(sheet.ModeMorning),
		CompactWidth: 100,
		LogLevel:     "info",
	}
}

// DefaultPath returns $HOME/.config/tasksheet/config.yaml.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "tasksheet", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.HourlyRate <= 0 {
		return fmt.Errorf("hourly_rate must be positive, got %v", c.HourlyRate)
	}
	if c.CompactWidth < 0 {
		return fmt.Errorf("compact_width must not be negative, got %d", c.CompactWidth)
	}
	return nil
}

// View returns the configured startup view mode.
func (c *Config) View() sheet.Mode {
	return sheet.ParseMode(c.DefaultView)
}
