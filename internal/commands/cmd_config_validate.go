package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/marginalia/internal/core/config"
	"github.com/hay-kot/marginalia/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "marginalia config validate [options]",
				Description: "Validates the configuration file, checking palette colors, numeric limits, and key bindings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validationIssue is one failing field.
type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	// The root hook skips validation for this command so broken configs
	// can be reported in full.
	cfg, err := config.Parse(cmd.flags.ConfigPath)
	if err != nil {
		return err
	}

	issues := collectIssues(cfg.ValidateDeep(cmd.flags.ConfigPath))
	warnings := cfg.Warnings()

	if cmd.format == "json" {
		return cmd.outputJSON(c, issues, warnings)
	}

	return cmd.outputText(p, issues, warnings)
}

func collectIssues(err error) []validationIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationIssue{{Field: "config", Message: err.Error()}}
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, issues []validationIssue, warnings []config.ValidationWarning) error {
	out := struct {
		Valid    bool                       `json:"valid"`
		Errors   []validationIssue          `json:"errors,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
	}{
		Valid:    len(issues) == 0,
		Errors:   issues,
		Warnings: warnings,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	if len(issues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, issues []validationIssue, warnings []config.ValidationWarning) error {
	for _, warn := range warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, issue := range issues {
		p.Errorf("%s: %s", issue.Field, issue.Message)
	}

	p.Printf("")
	if len(issues) == 0 {
		p.Successf("Configuration is valid: %s", cmd.flags.ConfigPath)
		return nil
	}

	p.Errorf("%d error(s) found", len(issues))
	return cli.Exit("", 1)
}
