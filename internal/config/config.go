// Package config loads the daemon settings file and the gesture rules file.
//
// Settings live in TOML and cover runtime knobs only (log level, rules
// path, live reload). Gesture rules live in YAML, the format the
// surrounding system has always persisted them in, which is why the three
// legacy configuration shapes exist at all: a bare label scalar, a label
// sequence, and the full mapping with staggering fields.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrFileNotFound indicates a configuration file that must exist doesn't.
var ErrFileNotFound = errors.New("config file not found")

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Settings holds the daemon's runtime configuration.
type Settings struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// RulesPath is the gesture rules file location.
	RulesPath string `toml:"rules_path"`

	// Watch enables live reload of the rules file.
	Watch bool `toml:"watch"`

	// DebounceMS coalesces rapid rules-file writes into one reload.
	DebounceMS int `toml:"debounce_ms"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:   "info",
		RulesPath:  "rules.yaml",
		Watch:      true,
		DebounceMS: 250,
	}
}

// LoadSettings reads settings from a TOML file. A missing file is not an
// error; defaults are returned so a bare invocation works out of the box.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if !validLogLevel(settings.LogLevel) {
		return DefaultSettings(), &ParseError{
			Path:    path,
			Message: fmt.Sprintf("invalid log_level %q", settings.LogLevel),
		}
	}
	if settings.DebounceMS < 0 {
		settings.DebounceMS = 0
	}
	return settings, nil
}

func validLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
