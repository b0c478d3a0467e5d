package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v, want nil for missing file", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("LoadSettings() = %+v, want defaults", settings)
	}
}

func TestLoadSettings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.toml", `
log_level = "debug"
rules_path = "/etc/mousegest/rules.yaml"
watch = false
debounce_ms = 100
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	want := Settings{
		LogLevel:   "debug",
		RulesPath:  "/etc/mousegest/rules.yaml",
		Watch:      false,
		DebounceMS: 100,
	}
	if settings != want {
		t.Errorf("LoadSettings() = %+v, want %+v", settings, want)
	}
}

func TestLoadSettingsPartial(t *testing.T) {
	// Unset fields keep their defaults.
	path := writeFile(t, t.TempDir(), "settings.toml", `log_level = "warn"`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", settings.LogLevel, "warn")
	}
	if settings.RulesPath != DefaultSettings().RulesPath {
		t.Errorf("RulesPath = %q, want default", settings.RulesPath)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", `log_level = [`},
		{"bad log level", `log_level = "chatty"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "settings.toml", tt.content)
			_, err := LoadSettings(path)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("LoadSettings() error = %v, want *ParseError", err)
			}
		})
	}
}
