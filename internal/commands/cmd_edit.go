package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/marginalia/internal/core/logging"
	"github.com/hay-kot/marginalia/internal/core/richtext"
	"github.com/hay-kot/marginalia/internal/printer"
	"github.com/hay-kot/marginalia/internal/report"
	"github.com/hay-kot/marginalia/internal/tui"
	"github.com/hay-kot/marginalia/internal/tui/views/editor"
	"github.com/hay-kot/marginalia/pkg/iojson"
	"github.com/hay-kot/marginalia/pkg/profiler"
)

// EditCmd opens the editor. It is the root command's default action.
type EditCmd struct {
	flags        *Flags
	noReport     bool
	reportFormat string
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Flags returns the editor flags for registration on the root command
func (cmd *EditCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-report",
			Usage:       "do not print the annotation report on exit",
			Sources:     cli.EnvVars("MARGINALIA_NO_REPORT"),
			Destination: &cmd.noReport,
		},
		&cli.StringFlag{
			Name:        "report-format",
			Usage:       "report output format (markdown, json)",
			Sources:     cli.EnvVars("MARGINALIA_REPORT_FORMAT"),
			Value:       "markdown",
			Destination: &cmd.reportFormat,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("MARGINALIA_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the editor. Exported for use as default command.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() > 1 {
		return fmt.Errorf("expected at most one file, got %d", c.Args().Len())
	}
	if cmd.reportFormat != "markdown" && cmd.reportFormat != "json" {
		return fmt.Errorf("unknown report format %q", cmd.reportFormat)
	}
	return cmd.run(ctx, c.Args().First())
}

func (cmd *EditCmd) run(ctx context.Context, path string) error {
	text, title, err := readDocument(path)
	if err != nil {
		return err
	}

	ctx = logging.WithSession(ctx, uuid.NewString())
	if path != "" {
		ctx = logging.WithDocument(ctx, path)
	}

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	opts, err := cmd.options(ctx, title, text)
	if err != nil {
		return err
	}

	// The editor owns the terminal; config warnings print after it exits.
	held := printer.Hold(os.Stderr)
	defer func() { _ = held.Release() }()
	for _, warn := range cmd.flags.Config.Warnings() {
		held.Warnf("%s: %s", warn.Category, warn.Message)
	}

	if path != "" {
		w, err := tui.NewFileWatcher(path)
		if err != nil {
			log.Warn().Ctx(ctx).Err(err).Msg("file watching disabled")
		} else {
			defer func() { _ = w.Close() }()
			opts.Watcher = w
		}
	}

	m := tui.New(opts)
	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	final, ok := finalModel.(tui.Model)
	if !ok || cmd.noReport {
		return nil
	}

	in := report.Collect(title, final.Document(), final.Records(), final.Palette())
	log.Info().Ctx(ctx).
		Int("comments", len(in.Records)).
		Int("ratings", len(in.Ratings)).
		Msg("editing session finished")

	if cmd.reportFormat == "json" {
		return iojson.Write(report.JSON(in))
	}
	return report.Write(os.Stdout, report.Markdown(in))
}

func (cmd *EditCmd) options(ctx context.Context, title, text string) (tui.Options, error) {
	cfg := cmd.flags.Config

	palette, err := cfg.RatingPalette()
	if err != nil {
		return tui.Options{}, err
	}

	logger := logging.Component("editor").With().Ctx(ctx).Logger()

	return tui.Options{
		Title: title,
		Text:  text,
		Document: richtext.Options{
			HistoryLimit: cfg.HistoryLimit,
			TabWidth:     cfg.TabWidth,
		},
		Palette:    palette,
		Layout:     cfg.PopoverLayout(),
		SliderStep: cfg.SliderStep,
		Keys:       editor.NewKeyMap(cfg.Keys),
		Logger:     logger,
	}, nil
}

// readDocument loads the file at path. Documents are never written back.
// An empty path starts an untitled empty document.
func readDocument(path string) (text, title string, err error) {
	if path == "" {
		return "", "untitled", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read document: %w", err)
	}
	return string(data), filepath.Base(path), nil
}
