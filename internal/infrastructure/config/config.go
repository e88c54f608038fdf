package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Settings   SettingsConfig
	Logging    LogConfig
	Editor     EditorConfig
	Appearance AppearanceConfig
}

// SettingsConfig holds settings-store configuration.
type SettingsConfig struct {
	Backend string `envconfig:"SETTINGS_BACKEND" default:"file"` // "file", "sqlite", "memory"
	Dir     string `envconfig:"SETTINGS_DIR" default:""`         // empty = per-user config dir
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// EditorConfig holds editor demo configuration.
type EditorConfig struct {
	MaxRecentFiles int `envconfig:"EDITOR_MAX_RECENT" default:"4"`
	DefaultWidth   int `envconfig:"EDITOR_DEFAULT_WIDTH" default:"400"`
	DefaultHeight  int `envconfig:"EDITOR_DEFAULT_HEIGHT" default:"200"`
}

// AppearanceConfig holds appearance defaults.
type AppearanceConfig struct {
	Style string `envconfig:"APPEARANCE_STYLE" default:"default"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Settings: SettingsConfig{
			Backend: "file",
			Dir:     "",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Editor: EditorConfig{
			MaxRecentFiles: 4,
			DefaultWidth:   400,
			DefaultHeight:  200,
		},
		Appearance: AppearanceConfig{
			Style: "default",
		},
	}
}

// SettingsDir resolves the directory holding persisted settings. An explicit
// SETTINGS_DIR wins; otherwise the per-user config directory is used.
func (c *Config) SettingsDir() (string, error) {
	if c.Settings.Dir != "" {
		return c.Settings.Dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, "glint"), nil
}
