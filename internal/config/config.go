// Package config handles editor configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidBrush is returned by Validate for an unusable brush setup.
var ErrInvalidBrush = errors.New("invalid brush settings")

// Config holds all editor settings.
type Config struct {
	Palettes PaletteConfig `yaml:"palettes"`
	Brush    BrushConfig   `yaml:"brush"`
	Logging  LoggingConfig `yaml:"logging"`
}

// PaletteConfig holds palette discovery settings.
type PaletteConfig struct {
	Dir         string `yaml:"dir"`          // Root directory scanned for .gpl files
	Default     string `yaml:"default"`      // Palette shown at startup
	SkipInvalid bool   `yaml:"skip_invalid"` // Skip files with a bad header instead of failing
}

// BrushConfig holds the brush size slider settings.
type BrushConfig struct {
	Size    float64 `yaml:"size"`
	MaxSize float64 `yaml:"max_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Palettes: PaletteConfig{
			Dir:         "palettes",
			Default:     "toxic-raven",
			SkipInvalid: false,
		},
		Brush: BrushConfig{
			Size:    1,
			MaxSize: 64,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.Brush.MaxSize < 1 {
		return fmt.Errorf("%w: max_size %v < 1", ErrInvalidBrush, c.Brush.MaxSize)
	}
	if c.Brush.Size < 1 || c.Brush.Size > c.Brush.MaxSize {
		return fmt.Errorf("%w: size %v outside [1, %v]", ErrInvalidBrush, c.Brush.Size, c.Brush.MaxSize)
	}
	return nil
}
