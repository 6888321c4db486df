package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/leadboard/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  drop_target: "#00FF00"
  pending: "#0000FF"
`)
	if err := os.WriteFile(themeFile, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(ThemeEnv, themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.DropTarget != "#00FF00" {
		t.Errorf("Expected drop target to be #00FF00, got %s", cfg.ColorScheme.DropTarget)
	}
	if cfg.ColorScheme.Pending != "#0000FF" {
		t.Errorf("Expected pending to be #0000FF, got %s", cfg.ColorScheme.Pending)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.ErrorFg == "" {
		t.Error("Expected error_fg to have default value")
	}
}

func TestPresetDefaults(t *testing.T) {
	scheme := colors.ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme.ApplyDefaults()

	if scheme.Accent != "#123456" {
		t.Errorf("Custom accent overwritten: %s", scheme.Accent)
	}
	if scheme.Title != colors.Monochrome().Title {
		t.Errorf("Title = %s, want monochrome preset %s", scheme.Title, colors.Monochrome().Title)
	}
}
