// Package config handles configuration loading and validation for marginalia.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/marginalia/internal/core/annotation"
	"github.com/hay-kot/marginalia/internal/core/popover"
	"github.com/hay-kot/marginalia/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Theme        string       `yaml:"theme"`
	Palette      []string     `yaml:"palette"`
	HistoryLimit int          `yaml:"history_limit"`
	SliderStep   int          `yaml:"slider_step"`
	TabWidth     int          `yaml:"tab_width"`
	Layout       LayoutConfig `yaml:"layout"`
	Keys         KeysConfig   `yaml:"keys"`
}

// LayoutConfig holds popover placement offsets, in terminal rows, relative
// to the top edge of the selection.
type LayoutConfig struct {
	ToolbarOffset int `yaml:"toolbar_offset"`
	TooltipOffset int `yaml:"tooltip_offset"`
	SliderOffset  int `yaml:"slider_offset"`
}

// KeysConfig maps editor actions to key strings as reported by bubbletea
// (e.g. "ctrl+b").
type KeysConfig struct {
	Bold    []string `yaml:"bold"`
	Rate    []string `yaml:"rate"`
	Comment []string `yaml:"comment"`
	Undo    []string `yaml:"undo"`
	Redo    []string `yaml:"redo"`
	Quit    []string `yaml:"quit"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cell := popover.CellLayout()
	return Config{
		Theme:        styles.DefaultTheme,
		Palette:      annotation.DefaultPalette(),
		HistoryLimit: 200,
		SliderStep:   5,
		TabWidth:     4,
		Layout: LayoutConfig{
			ToolbarOffset: cell.ToolbarOffset,
			TooltipOffset: cell.TooltipOffset,
			SliderOffset:  cell.SliderOffset,
		},
		Keys: KeysConfig{
			Bold:    []string{"ctrl+b"},
			Rate:    []string{"ctrl+r"},
			Comment: []string{"ctrl+t"},
			Undo:    []string{"ctrl+z"},
			Redo:    []string{"ctrl+y"},
			Quit:    []string{"ctrl+c", "ctrl+q"},
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Parse(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Parse reads configuration and applies defaults without validating it.
// Used by commands that report on invalid configuration.
func Parse(configPath string) (*Config, error) {
	cfg := Config{}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// Layout offsets are applied as a group so a deliberate zero offset survives
// when any sibling offset is set.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if len(c.Palette) == 0 {
		c.Palette = defaults.Palette
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = defaults.HistoryLimit
	}
	if c.SliderStep == 0 {
		c.SliderStep = defaults.SliderStep
	}
	if c.TabWidth == 0 {
		c.TabWidth = defaults.TabWidth
	}
	if c.Layout == (LayoutConfig{}) {
		c.Layout = defaults.Layout
	}

	c.Keys.Bold = orDefault(c.Keys.Bold, defaults.Keys.Bold)
	c.Keys.Rate = orDefault(c.Keys.Rate, defaults.Keys.Rate)
	c.Keys.Comment = orDefault(c.Keys.Comment, defaults.Keys.Comment)
	c.Keys.Undo = orDefault(c.Keys.Undo, defaults.Keys.Undo)
	c.Keys.Redo = orDefault(c.Keys.Redo, defaults.Keys.Redo)
	c.Keys.Quit = orDefault(c.Keys.Quit, defaults.Keys.Quit)
}

func orDefault(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}

	if _, err := annotation.ParsePalette(c.Palette); err != nil {
		return err
	}

	if c.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be at least 1")
	}

	if c.SliderStep < 1 || c.SliderStep > annotation.MaxRating {
		return fmt.Errorf("slider_step must be between 1 and %d", annotation.MaxRating)
	}

	if c.TabWidth < 1 {
		return fmt.Errorf("tab_width must be at least 1")
	}

	return nil
}

// RatingPalette returns the parsed rating palette. Load has already
// validated it, so the error only surfaces for hand-built configs.
func (c *Config) RatingPalette() (annotation.Palette, error) {
	return annotation.ParsePalette(c.Palette)
}

// PopoverLayout converts the configured offsets into a popover layout.
func (c *Config) PopoverLayout() popover.Layout {
	return popover.Layout{
		ToolbarOffset: c.Layout.ToolbarOffset,
		TooltipOffset: c.Layout.TooltipOffset,
		SliderOffset:  c.Layout.SliderOffset,
	}
}
