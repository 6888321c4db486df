package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/leadboard/internal/config/colors"
	"github.com/thenoetrevino/leadboard/internal/models"
)

const (
	// ConfigEnv points at an explicit config file.
	ConfigEnv = "LEADBOARD_CONFIG"
	// ThemeEnv points at a theme file merged over the config's theme.
	ThemeEnv = "LEADBOARD_THEME_FILE"

	// DefaultActivationDistance is measured in terminal cells.
	DefaultActivationDistance = 2.0
	DefaultLatency            = 400 * time.Millisecond
	DefaultNotificationTTL    = 4 * time.Second
)

// Config represents the application configuration
type Config struct {
	KeyMappings   KeyMappings        `yaml:"key_mappings"`
	ColorScheme   colors.ColorScheme `yaml:"theme"`
	Board         BoardConfig        `yaml:"board"`
	MockAPI       MockAPIConfig      `yaml:"mock_api"`
	Notifications NotificationConfig `yaml:"notifications"`
	Database      DatabaseConfig     `yaml:"database"`
}

// BoardConfig tunes the pipeline board.
type BoardConfig struct {
	// ActivationDistance is how far a pointer must travel before a press
	// becomes a drag, in terminal cells.
	ActivationDistance float64 `yaml:"activation_distance"`
	// ColumnTitles overrides column headings, keyed by status.
	ColumnTitles map[string]string `yaml:"column_titles,omitempty"`
}

// Titles returns ColumnTitles keyed by status.
func (b BoardConfig) Titles() map[models.Status]string {
	out := make(map[models.Status]string, len(b.ColumnTitles))
	for k, v := range b.ColumnTitles {
		if s, err := models.ParseStatus(k); err == nil {
			out[s] = v
		}
	}
	return out
}

// MockAPIConfig controls the simulated remote API.
type MockAPIConfig struct {
	// Latency is added to every call. Nil means DefaultLatency.
	Latency *time.Duration `yaml:"latency,omitempty"`
	Jitter  time.Duration  `yaml:"jitter,omitempty"`
	// FailureRate is the probability in [0, 1] that a write fails.
	FailureRate float64 `yaml:"failure_rate"`
}

// NotificationConfig controls transient notifications.
type NotificationConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// DatabaseConfig locates the lead store.
type DatabaseConfig struct {
	// Path defaults to ~/.leadboard/leads.db when empty.
	Path string `yaml:"path,omitempty"`
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from LEADBOARD_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.MockAPI.FailureRate < 0 || c.MockAPI.FailureRate > 1 {
		return fmt.Errorf("mock_api.failure_rate must be within [0, 1], got %v", c.MockAPI.FailureRate)
	}
	if c.MockAPI.Latency != nil && *c.MockAPI.Latency < 0 {
		return fmt.Errorf("mock_api.latency cannot be negative")
	}
	if c.Board.ActivationDistance < 0 {
		return fmt.Errorf("board.activation_distance cannot be negative")
	}
	for k := range c.Board.ColumnTitles {
		if _, err := models.ParseStatus(k); err != nil {
			return fmt.Errorf("board.column_titles: %w", err)
		}
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if explicit := os.Getenv(ConfigEnv); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "leadboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "leadboard", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.Board.ActivationDistance == 0 {
		c.Board.ActivationDistance = DefaultActivationDistance
	}
	if c.MockAPI.Latency == nil {
		latency := DefaultLatency
		c.MockAPI.Latency = &latency
	}
	if c.Notifications.TTL <= 0 {
		c.Notifications.TTL = DefaultNotificationTTL
	}
}

// LatencyOrDefault returns the configured mock latency.
func (m MockAPIConfig) LatencyOrDefault() time.Duration {
	if m.Latency == nil {
		return DefaultLatency
	}
	return *m.Latency
}
