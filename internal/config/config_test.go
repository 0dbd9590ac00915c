package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.ToggleTask != "space" {
		t.Errorf("Default ToggleTask key = %s, want space", defaults.ToggleTask)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(DatabasePathEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.Feed.Grace() != DefaultGracePeriod {
		t.Errorf("Grace() = %v, want %v", cfg.Feed.Grace(), DefaultGracePeriod)
	}
	if cfg.Feed.Poll() != DefaultPollInterval {
		t.Errorf("Poll() = %v, want %v", cfg.Feed.Poll(), DefaultPollInterval)
	}
	if filepath.Base(cfg.DatabasePath) != "tasks.db" {
		t.Errorf("DatabasePath = %s, want .../tasks.db", cfg.DatabasePath)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(DatabasePathEnv, "")

	configDir := filepath.Join(tempDir, "focup")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `database_path: /tmp/focup-custom.db
log_level: debug
feed:
  grace_period: 0s
  poll_interval: 250ms
key_mappings:
  quit: "x"
  add_task: "n"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "n" {
		t.Errorf("Loaded AddTask key = %s, want n", cfg.KeyMappings.AddTask)
	}
	// Unspecified values should use defaults
	if cfg.KeyMappings.DeleteTask != "d" {
		t.Errorf("Loaded DeleteTask key = %s, want d (default)", cfg.KeyMappings.DeleteTask)
	}
	if cfg.DatabasePath != "/tmp/focup-custom.db" {
		t.Errorf("DatabasePath = %s", cfg.DatabasePath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.Feed.Grace() != 0 {
		t.Errorf("Grace() = %v, want 0 (explicitly configured)", cfg.Feed.Grace())
	}
	if cfg.Feed.Poll() != 250*time.Millisecond {
		t.Errorf("Poll() = %v, want 250ms", cfg.Feed.Poll())
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "focup")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("key_mappings: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestDatabasePathEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(DatabasePathEnv, "/tmp/override.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DatabasePath != "/tmp/override.db" {
		t.Errorf("DatabasePath = %s, want /tmp/override.db", cfg.DatabasePath)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(DatabasePathEnv, "")

	grace := 250 * time.Millisecond
	cfg := &Config{
		Feed: FeedConfig{GracePeriod: &grace},
		KeyMappings: KeyMappings{
			Quit:    "x",
			AddTask: "n",
		},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "focup", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.AddTask != "n" {
		t.Errorf("Reloaded AddTask key = %s, want n", cfg2.KeyMappings.AddTask)
	}
	if cfg2.Feed.Grace() != grace {
		t.Errorf("Reloaded grace = %v, want %v", cfg2.Feed.Grace(), grace)
	}
}

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  subtle: "#00FF00"
`)
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}
	t.Setenv("FOCUP_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Theme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.Theme.Accent)
	}
	if cfg.Theme.Subtle != "#00FF00" {
		t.Errorf("Expected subtle to be #00FF00, got %s", cfg.Theme.Subtle)
	}
	if cfg.Theme.Error != DefaultTheme().Error {
		t.Errorf("Expected error color to keep its default, got %s", cfg.Theme.Error)
	}
}

func TestThemePreset(t *testing.T) {
	theme := Theme{Preset: "monochrome"}
	theme.ApplyDefaults()

	if theme.Accent != MonochromeTheme().Accent {
		t.Errorf("monochrome accent = %s", theme.Accent)
	}
}
