package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hay-kot/criterio"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/hay-kot/marginalia/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// per-entry palette checks, key conflicts, and file accessibility. The configPath
// argument specifies the config file location to validate (empty string skips
// config file check). Unlike Validate, every problem is reported, not just the first.
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validatePalette(),
		c.validateNumbers(),
		c.validateKeys(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Layout.ToolbarOffset >= 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Layout",
			Item:     "toolbar_offset",
			Message:  "toolbar will cover the selected text",
		})
	}

	if c.Layout.SliderOffset > 0 && c.Layout.SliderOffset < -c.Layout.ToolbarOffset {
		warnings = append(warnings, ValidationWarning{
			Category: "Layout",
			Item:     "slider_offset",
			Message:  "slider will cover the selected text",
		})
	}

	if len(c.Palette) > 0 && len(c.Palette) < 3 {
		warnings = append(warnings, ValidationWarning{
			Category: "Palette",
			Message:  fmt.Sprintf("only %d colors; ratings will be coarse", len(c.Palette)),
		})
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validatePalette() error {
	if len(c.Palette) < 2 {
		return criterio.NewFieldErrors("palette", fmt.Errorf("needs at least two colors, got %d", len(c.Palette)))
	}

	var errs criterio.FieldErrorsBuilder
	for i, hex := range c.Palette {
		if _, err := colorful.Hex(hex); err != nil {
			errs = errs.Append(fmt.Sprintf("palette[%d]", i), fmt.Errorf("invalid hex color %q", hex))
		}
	}
	return errs.ToError()
}

func (c *Config) validateNumbers() error {
	var errs criterio.FieldErrorsBuilder
	if err := atLeast(1)(c.HistoryLimit); err != nil {
		errs = errs.Append("history_limit", err)
	}
	if err := between(1, 100)(c.SliderStep); err != nil {
		errs = errs.Append("slider_step", err)
	}
	if err := between(1, 16)(c.TabWidth); err != nil {
		errs = errs.Append("tab_width", err)
	}

	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, knownTheme),
		errs.ToError(),
	)
}

// validateKeys reports empty key strings and keys bound to more than one
// action.
func (c *Config) validateKeys() error {
	actions := map[string][]string{
		"bold":    c.Keys.Bold,
		"rate":    c.Keys.Rate,
		"comment": c.Keys.Comment,
		"undo":    c.Keys.Undo,
		"redo":    c.Keys.Redo,
		"quit":    c.Keys.Quit,
	}

	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs criterio.FieldErrorsBuilder
	owner := make(map[string]string)
	for _, name := range names {
		for i, k := range actions[name] {
			field := fmt.Sprintf("keys.%s[%d]", name, i)
			if k == "" {
				errs = errs.Append(field, fmt.Errorf("key cannot be empty"))
				continue
			}
			if prev, ok := owner[k]; ok && prev != name {
				errs = errs.Append(field, fmt.Errorf("%q is already bound to %s", k, prev))
				continue
			}
			owner[k] = name
		}
	}
	return errs.ToError()
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}

func atLeast(n int) func(int) error {
	return func(v int) error {
		if v < n {
			return fmt.Errorf("must be at least %d", n)
		}
		return nil
	}
}

func between(lo, hi int) func(int) error {
	return func(v int) error {
		if v < lo || v > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}
