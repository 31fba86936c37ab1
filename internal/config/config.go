// Package config handles global cardboard configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/cardboard/internal/vcard"
)

// Config represents the global cardboard configuration.
type Config struct {
	// Export controls how contact files are written.
	Export ExportConfig `toml:"export"`

	// Photo controls how contact photos are displayed.
	Photo PhotoConfig `toml:"photo"`

	// Log controls diagnostic output.
	Log LogConfig `toml:"log"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// ExportConfig controls export.
type ExportConfig struct {
	// FoldWidth is the maximum physical line length in octets. Photos keep
	// the width they were read with. Values below 2 disable folding.
	FoldWidth int `toml:"fold_width"`

	// Backup keeps the previous file as <file>.bak when overwriting.
	Backup bool `toml:"backup"`
}

// PhotoConfig controls photo display.
type PhotoConfig struct {
	// Placeholder is shown for contacts without a usable photo.
	Placeholder string `toml:"placeholder"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// Format is "console" or "json".
	Format string `toml:"format"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown code blocks.
	CodeTheme string `toml:"code_theme"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			FoldWidth: vcard.DefaultFoldWidth,
			Backup:    true,
		},
		Photo: PhotoConfig{
			Placeholder: vcard.DefaultPhoto,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		UI: UIConfig{
			Accent:    "#A78BFA",
			CodeTheme: "monokai",
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Export.FoldWidth < 0 {
		return fmt.Errorf("export.fold_width must not be negative, got %d", c.Export.FoldWidth)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// Load loads the configuration from the default location.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path. Keys missing from
// the file keep their defaults.
func LoadFrom(path string) (*Config, error) {
	config := Default()
	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// ResolvePath returns the explicit path when given, otherwise DefaultPath.
func ResolvePath(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/cardboard/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "cardboard", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "cardboard", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

const defaultConfig = `# cardboard configuration

[export]
# Maximum physical line length in octets when writing contact files.
# Photos keep the width they were read with.
fold_width = 75
# Keep the previous file as <file>.bak when overwriting.
backup = true

[photo]
# Shown for contacts without a usable photo.
placeholder = "images/avatar.png"

[log]
# debug, info, warn or error
level = "warn"
# console or json
format = "console"

[ui]
# ANSI color code (0-255) or hex (#RRGGBB); "none" disables it.
accent = "#A78BFA"
code_theme = "monokai"
`

// CreateDefault writes a commented default config file to path unless one
// already exists. It reports whether a file was written.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
