// Package config loads xdgicon settings from a YAML file, a .env file and
// XDGICON_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvTheme    = "XDGICON_THEME"
	EnvDirs     = "XDGICON_DIRS"
	EnvLogLevel = "XDGICON_LOG_LEVEL"
)

// Config holds the lookup defaults and extra search directories.
type Config struct {
	// Theme is the theme lookups start in.
	Theme string `yaml:"theme"`
	Size  int    `yaml:"size"`
	Scale int    `yaml:"scale"`
	// Dirs are searched before the default search directories.
	Dirs     []string `yaml:"dirs"`
	LogLevel string   `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:    "hicolor",
		Size:     48,
		Scale:    1,
		LogLevel: "info",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/xdgicon/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "xdgicon", "config.yaml")
}

// Load reads the YAML file at configPath over the defaults, then applies a
// .env file next to it and the XDGICON_* environment variables. An empty
// configPath means DefaultPath, which may be missing.
func Load(configPath string) (*Config, error) {
	optional := configPath == ""
	if optional {
		configPath = DefaultPath()
	}

	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := Default()
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	if v := os.Getenv(EnvDirs); v != "" {
		c.Dirs = filepath.SplitList(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate rejects non-positive sizes and scales and an empty theme.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if strings.TrimSpace(c.Theme) == "" {
		return fmt.Errorf("theme is required")
	}
	return nil
}
