// Package config handles configuration loading and validation for richsel.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete configuration.
type Config struct {
	// Layout controls how documents are typeset.
	Layout LayoutConfig `toml:"layout" yaml:"layout"`

	// Font selects the faces used for layout.
	Font FontConfig `toml:"font" yaml:"font"`

	// Selection holds selection geometry settings.
	Selection SelectionConfig `toml:"selection" yaml:"selection"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// LayoutConfig holds typesetting configuration. Lengths are in pixels.
type LayoutConfig struct {
	// Width is the wrap width. Zero disables wrapping.
	Width int `toml:"width" yaml:"width"`

	// Padding offsets the first layout from the top left corner.
	Padding int `toml:"padding" yaml:"padding"`

	// BlockSpacing is the gap between blocks.
	BlockSpacing int `toml:"block_spacing" yaml:"block_spacing"`

	// TabWidth is the distance between tab stops, in spaces.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// Direction is "auto", "ltr" or "rtl". With "auto" the direction
	// comes from Locale when set and from each block's text otherwise.
	Direction string `toml:"direction" yaml:"direction"`

	// Locale is a BCP 47 language tag.
	Locale string `toml:"locale" yaml:"locale"`
}

// FontConfig selects the fonts.
type FontConfig struct {
	// Face is "go" (the Go font family), "basic" (7x13 bitmap) or "fixed".
	Face string `toml:"face" yaml:"face"`

	// Size is the body text size in points.
	Size float64 `toml:"size" yaml:"size"`

	// DPI is the display resolution.
	DPI float64 `toml:"dpi" yaml:"dpi"`
}

// SelectionConfig holds selection settings.
type SelectionConfig struct {
	// CaretWidth is the width of the caret rectangle in pixels.
	CaretWidth float64 `toml:"caret_width" yaml:"caret_width"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// Format is text or json.
	Format string `toml:"format" yaml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Width:        640,
			Padding:      16,
			BlockSpacing: 8,
			TabWidth:     8,
			Direction:    "auto",
		},
		Font: FontConfig{
			Face: "go",
			Size: 12,
			DPI:  72,
		},
		Selection: SelectionConfig{
			CaretWidth: 2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from path over the defaults and validates it.
// An empty path or a missing file yields the defaults. The format follows
// the extension: YAML for .yaml and .yml, TOML otherwise.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
