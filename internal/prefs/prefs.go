// Package prefs loads and saves user preferences for the tally CLI.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/tally/format"
)

// Environment overrides.
const (
	EnvSeparator = "TALLY_SEPARATOR"
	EnvLogLevel  = "TALLY_LOG_LEVEL"
	EnvLogFile   = "TALLY_LOG_FILE"
)

var (
	ErrInvalidHistoryLimit = errors.New("prefs: history limit must be >= -1")
	ErrInvalidLogLevel     = errors.New("prefs: unknown log level")
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Preferences holds everything the CLI persists between runs.
type Preferences struct {
	Separator    format.Separator `yaml:"separator"`
	HistoryLimit int              `yaml:"history_limit"` // 0: default, -1: disabled
	Prompt       string           `yaml:"prompt"`
	Log          LogPreferences   `yaml:"log"`
}

type LogPreferences struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty disables logging
}

func Default() *Preferences {
	return &Preferences{
		Separator: format.SeparatorSpace,
		Prompt:    "> ",
		Log:       LogPreferences{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tally/config.yaml, falling back to the
// OS user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		d, err := os.UserConfigDir()
		if err != nil {
			return filepath.Join(".tally", "config.yaml")
		}
		dir = d
	}
	return filepath.Join(dir, "tally", "config.yaml")
}

// Load reads preferences from path. A missing file yields defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Preferences, error) {
	p := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse preferences: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	if err := p.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes preferences to path as YAML, creating parent directories.
func (p *Preferences) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func (p *Preferences) Validate() error {
	if p.HistoryLimit < -1 {
		return fmt.Errorf("%w: %d", ErrInvalidHistoryLimit, p.HistoryLimit)
	}
	lvl := strings.ToLower(strings.TrimSpace(p.Log.Level))
	if lvl == "" {
		return nil
	}
	for _, l := range logLevels {
		if l == lvl {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidLogLevel, p.Log.Level)
}

func (p *Preferences) applyEnvOverrides() error {
	if v := os.Getenv(EnvSeparator); v != "" {
		sep, err := format.ParseSeparator(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeparator, err)
		}
		p.Separator = sep
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		p.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		p.Log.File = v
	}
	return nil
}
