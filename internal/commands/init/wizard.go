// Package initcmd implements the interactive config wizard.
package initcmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/marginalia/internal/core/annotation"
	"github.com/hay-kot/marginalia/internal/core/config"
	"github.com/hay-kot/marginalia/internal/core/styles"
	"github.com/hay-kot/marginalia/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool   // skip prompts, use defaults
	Force      bool   // overwrite existing config
	Theme      string // pre-selected theme ("" = prompt)
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	opts := ConfigOptions{
		Theme:      w.opts.Theme,
		SliderStep: config.DefaultConfig().SliderStep,
	}

	if !w.opts.Yes {
		var err error
		opts, err = w.promptUser(opts)
		if err != nil {
			return err
		}
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	cfg := GenerateConfig(opts)
	if err := WriteConfig(cfg, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Adjust the palette and key bindings in %s", w.opts.ConfigPath)
	p.Printf("  2. Run 'marginalia <file>' to start annotating")

	return nil
}

func (w *Wizard) promptUser(opts ConfigOptions) (ConfigOptions, error) {
	theme := opts.Theme
	if theme == "" {
		theme = styles.DefaultTheme
	}
	step := strconv.Itoa(opts.SliderStep)

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(huh.NewOptions(styles.ThemeNames()...)...).
			Value(&theme),
		huh.NewInput().
			Title("Slider step").
			Description("How far the arrow keys move the rating slider").
			Value(&step).
			Validate(validateStep),
	))
	if err := form.Run(); err != nil {
		return opts, err
	}

	n, _ := strconv.Atoi(step)
	return ConfigOptions{Theme: theme, SliderStep: n}, nil
}

func validateStep(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < 1 || n > annotation.MaxRating {
		return fmt.Errorf("must be between 1 and %d", annotation.MaxRating)
	}
	return nil
}
