// Package config loads the reedit configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// MinBrowserWidth is the narrowest accepted sidebar.
const MinBrowserWidth = 10

// Config represents the configuration file.
type Config struct {
	Editor struct {
		AutoIndent      bool `yaml:"auto_indent"`      // Carry indentation on Enter
		LineNumbers     bool `yaml:"line_numbers"`     // Show the line-number gutter
		SystemClipboard bool `yaml:"system_clipboard"` // Mirror copies to the OS clipboard
	} `yaml:"editor"`
	Browser struct {
		ShowHidden bool     `yaml:"show_hidden"` // List dot-files
		Ignore     []string `yaml:"ignore"`      // Glob patterns hidden from the listing
		Width      int      `yaml:"width"`       // Sidebar columns, border included
	} `yaml:"browser"`
	Log struct {
		File  string `yaml:"file"`  // Log file; empty discards logs
		Level string `yaml:"level"` // debug, info, warn or error
	} `yaml:"log"`
	Theme struct {
		Accent string `yaml:"accent"` // Title, directories and mode badge
		Muted  string `yaml:"muted"`  // Help line, borders and gutter
	} `yaml:"theme"`
}

// Error reports an invalid configuration field.
type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.Editor.AutoIndent = true
	cfg.Browser.ShowHidden = true
	cfg.Browser.Width = 24
	cfg.Log.Level = "info"
	cfg.Theme.Accent = "63"
	cfg.Theme.Muted = "240"
	return cfg
}

// DefaultPath returns $XDG_CONFIG_HOME/reedit/config.yaml, falling back to
// ~/.config/reedit/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "reedit", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "reedit", "config.yaml"), nil
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path. Keys missing from the file keep
// their defaults; a missing file yields Default().
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges and ignore patterns.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.Browser.Width < MinBrowserWidth {
		return &Error{Field: "browser.width", Err: fmt.Errorf("must be >= %d, got %d", MinBrowserWidth, c.Browser.Width)}
	}
	for i, pat := range c.Browser.Ignore {
		if _, err := glob.Compile(pat); err != nil {
			return &Error{Field: fmt.Sprintf("browser.ignore[%d]", i), Err: err}
		}
	}
	if c.Log.Level != "" && !validLevels[c.Log.Level] {
		return &Error{Field: "log.level", Err: fmt.Errorf("unknown level %q", c.Log.Level)}
	}
	return nil
}
