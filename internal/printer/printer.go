// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"

	"github.com/hay-kot/marginalia/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status messages prefixed with themed icons.
type Printer struct {
	out io.Writer
}

// New creates a printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or a printer writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(prefix lipgloss.Style, icon, format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, prefix.Render(icon)+" "+fmt.Sprintf(format, args...))
}

// Successf prints a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle, "✓", format, args...)
}

// Infof prints an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorPrimary), "•", format, args...)
}

// Warnf prints a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorWarning), "!", format, args...)
}

// Errorf prints an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle, "✗", format, args...)
}

// Printf prints an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.out, styles.CommandHeaderStyle.Render(title))
}
