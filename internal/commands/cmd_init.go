package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	initcmd "github.com/hay-kot/marginalia/internal/commands/init"
	"github.com/hay-kot/marginalia/internal/core/styles"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
	theme string
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a starter configuration with an interactive wizard",
		UsageText: "marginalia init [options]",
		Description: `Generates ~/.config/marginalia/config.yaml with sensible defaults.

The wizard asks for a theme and the rating slider step. An existing
config is backed up to config.yaml.bak before it is replaced.

Use --yes to accept all defaults without prompts.
Use --force to overwrite existing configuration.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme to preselect",
				Destination: &cmd.theme,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, _ *cli.Command) error {
	if cmd.theme != "" {
		if _, ok := styles.GetPalette(cmd.theme); !ok {
			return fmt.Errorf("unknown theme %q (available: %s)", cmd.theme, strings.Join(styles.ThemeNames(), ", "))
		}
	}

	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath: cmd.flags.ConfigPath,
		Yes:        cmd.yes,
		Force:      cmd.force,
		Theme:      cmd.theme,
	})
	return wizard.Run(ctx)
}
