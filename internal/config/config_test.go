package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// isolate points config lookups at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(ConfigEnv, "")
	t.Setenv(ThemeEnv, "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configDir := filepath.Join(dir, "leadboard")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	path := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddLead != "a" {
		t.Errorf("Default AddLead key = %s, want a", defaults.AddLead)
	}
	if defaults.PickUp != "space" {
		t.Errorf("Default PickUp key = %s, want space", defaults.PickUp)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, DefaultActivationDistance, cfg.Board.ActivationDistance)
	assert.Equal(t, DefaultLatency, cfg.MockAPI.LatencyOrDefault())
	assert.Equal(t, DefaultNotificationTTL, cfg.Notifications.TTL)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `key_mappings:
  quit: "x"
  add_lead: "n"
board:
  activation_distance: 4
  column_titles:
    Quoted: "Estimate sent"
mock_api:
  latency: 0s
  jitter: 50ms
  failure_rate: 0.25
notifications:
  ttl: 10s
database:
  path: /tmp/leads.db
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "n", cfg.KeyMappings.AddLead)
	assert.Equal(t, "j", cfg.KeyMappings.NextLead, "unspecified keys use defaults")

	assert.Equal(t, 4.0, cfg.Board.ActivationDistance)
	assert.Equal(t, map[models.Status]string{models.StatusQuoted: "Estimate sent"}, cfg.Board.Titles())

	assert.Equal(t, time.Duration(0), cfg.MockAPI.LatencyOrDefault(), "explicit zero latency is kept")
	assert.Equal(t, 50*time.Millisecond, cfg.MockAPI.Jitter)
	assert.Equal(t, 0.25, cfg.MockAPI.FailureRate)
	assert.Equal(t, 10*time.Second, cfg.Notifications.TTL)
	assert.Equal(t, "/tmp/leads.db", cfg.Database.Path)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key_mappings:\n  quit: \"Q\"\n"), 0o644))
	t.Setenv(ConfigEnv, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Q", cfg.KeyMappings.Quit)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"failure rate above one", "mock_api:\n  failure_rate: 1.5\n"},
		{"unknown column", "board:\n  column_titles:\n    archived: Old\n"},
		{"negative distance", "board:\n  activation_distance: -1\n"},
		{"bad yaml", "board: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, tt.content)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:    "x",
			AddLead: "n",
		},
		MockAPI: MockAPIConfig{FailureRate: 0.5},
	}
	cfg.applyDefaults()

	require.NoError(t, cfg.Save())

	configPath := filepath.Join(dir, "leadboard", "config.yaml")
	_, err := os.Stat(configPath)
	require.NoError(t, err, "config file not created at %s", configPath)

	cfg2, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "x", cfg2.KeyMappings.Quit)
	assert.Equal(t, "n", cfg2.KeyMappings.AddLead)
	assert.Equal(t, 0.5, cfg2.MockAPI.FailureRate)
	assert.Equal(t, DefaultLatency, cfg2.MockAPI.LatencyOrDefault())
}
