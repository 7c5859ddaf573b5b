package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/marginalia/internal/commands"
	"github.com/hay-kot/marginalia/internal/core/config"
	"github.com/hay-kot/marginalia/internal/core/logging"
	"github.com/hay-kot/marginalia/internal/core/styles"
	"github.com/hay-kot/marginalia/internal/printer"
	"github.com/hay-kot/marginalia/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() reads
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := printer.NewContext(context.Background(), printer.New(os.Stderr))

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "marginalia",
		Usage:     "Annotate text in the terminal",
		UsageText: "marginalia [global options] [file]\n   marginalia [global options] command [command options]",
		Description: `Marginalia opens a document in a terminal editor where selected passages
can be made bold, rated on a color scale, or commented.

Select text with the mouse or shift+arrows to bring up the toolbar. Click
a commented passage to read its comment. The file on disk is never
modified; a markdown report of comments and ratings is printed on exit.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("MARGINALIA_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("MARGINALIA_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("MARGINALIA_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			// init and config validate must work with a broken config file.
			if skipsConfigLoad(c) {
				return ctx, nil
			}

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	editCmd := commands.NewEditCmd(flags)

	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewInitCmd(flags).Register(app)

	// Register editor flags on root command
	app.Flags = append(app.Flags, editCmd.Flags()...)

	// Open the editor when no subcommand is provided
	app.Action = editCmd.Run

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

// skipsConfigLoad reports whether the invocation targets `init` or
// `config validate`. Before runs on the root command, so the subcommand is
// read from the remaining arguments.
func skipsConfigLoad(c *cli.Command) bool {
	args := c.Args().Slice()
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "init":
		return true
	case "config":
		return len(args) > 1 && args[1] == "validate"
	}
	return false
}
