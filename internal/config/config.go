package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DatabasePathEnv overrides the configured database path
const DatabasePathEnv = "FOCUP_DB_PATH"

// Config represents the application configuration
type Config struct {
	DatabasePath string      `yaml:"database_path"`
	LogPath      string      `yaml:"log_path"`
	LogLevel     string      `yaml:"log_level"`
	Feed         FeedConfig  `yaml:"feed"`
	KeyMappings  KeyMappings `yaml:"key_mappings"`
	Theme        Theme       `yaml:"theme"`
}

// FeedConfig tunes the change feed
type FeedConfig struct {
	// GracePeriod is how long the feed stays warm with no subscribers.
	// Zero suspends immediately, negative never suspends.
	GracePeriod *time.Duration `yaml:"grace_period,omitempty"`

	// PollInterval is how often an observed feed checks for commits made by
	// other focup processes
	PollInterval time.Duration `yaml:"poll_interval,omitempty"`
}

// DefaultGracePeriod matches the change feed default
const DefaultGracePeriod = 5 * time.Second

// DefaultPollInterval matches the change feed default
const DefaultPollInterval = 500 * time.Millisecond

// Poll returns the configured poll interval or the default
func (f FeedConfig) Poll() time.Duration {
	if f.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return f.PollInterval
}

// Grace returns the configured grace period or the default
func (f FeedConfig) Grace() time.Duration {
	if f.GracePeriod == nil {
		return DefaultGracePeriod
	}
	return *f.GracePeriod
}

// Default returns a config with every field set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile merges the theme from FOCUP_THEME_FILE when set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("FOCUP_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme Theme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	loadThemeFile(config)

	if path := os.Getenv(DatabasePathEnv); path != "" {
		config.DatabasePath = path
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location of the user config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "focup", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "focup", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		if c.DatabasePath == "" {
			c.DatabasePath = filepath.Join(homeDir, ".focup", "tasks.db")
		}
		if c.LogPath == "" {
			c.LogPath = filepath.Join(homeDir, ".focup", "logs", "focup.log")
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.KeyMappings.applyDefaults()
	c.Theme.ApplyDefaults()
}
