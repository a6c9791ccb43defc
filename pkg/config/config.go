// Package config loads the application defaults file.
//
// Defaults live in <config dir>/config.toml and cover the knobs a user sets
// once rather than per invocation: margin, rasterization DPI, grid
// visibility, and the folder input files are resolved against. The preset
// definitions themselves live in a separate YAML file handled by the preset
// package.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rkohler/quadsheet/pkg/errors"
)

// Filenames inside the config directory.
const (
	FileName        = "config.toml"
	PresetsFileName = "presets.yaml"
)

// Config holds the user-tunable defaults.
type Config struct {
	Margin       *float64 `toml:"margin"`        // quadrant margin in inches
	DPI          *int     `toml:"dpi"`           // PDF rasterization DPI
	Grid         *bool    `toml:"grid"`          // draw quadrant grid lines
	DownloadsDir string   `toml:"downloads_dir"` // folder input files resolve against
}

// Built-in fallbacks used when the config file does not set a value.
const (
	DefaultMargin = 0.25
	DefaultDPI    = 300
	DefaultGrid   = true
)

// Dir returns the configuration directory, honoring QUADSHEET_CONFIG_DIR
// and defaulting to ~/.quadsheet.
func Dir() (string, error) {
	if dir := os.Getenv("QUADSHEET_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "locate home directory")
	}
	return filepath.Join(home, ".quadsheet"), nil
}

// Load reads the defaults file at path. A missing file yields a zero-value
// Config; a malformed file is an INVALID_CONFIGURATION error.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "parse config %s", path)
	}
	return cfg, nil
}

// MarginOrDefault returns the configured margin or the built-in fallback.
func (c Config) MarginOrDefault() float64 {
	if c.Margin != nil {
		return *c.Margin
	}
	return DefaultMargin
}

// DPIOrDefault returns the configured DPI or the built-in fallback.
func (c Config) DPIOrDefault() int {
	if c.DPI != nil {
		return *c.DPI
	}
	return DefaultDPI
}

// GridOrDefault returns the configured grid visibility or the built-in fallback.
func (c Config) GridOrDefault() bool {
	if c.Grid != nil {
		return *c.Grid
	}
	return DefaultGrid
}
