// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	TextMutedStyle     lipgloss.Style
	ErrorStyle         lipgloss.Style
	SuccessStyle       lipgloss.Style

	// Editor surface.
	HeaderStyle          lipgloss.Style
	HeaderButtonStyle    lipgloss.Style
	HeaderButtonOffStyle lipgloss.Style
	GutterStyle          lipgloss.Style
	GutterActiveStyle    lipgloss.Style
	TextStyle            lipgloss.Style
	SelectionStyle       lipgloss.Style
	CursorStyle          lipgloss.Style
	StatusStyle          lipgloss.Style
	NoticeStyle          lipgloss.Style

	// Popovers.
	PopoverStyle        lipgloss.Style
	ToolbarButtonStyle  lipgloss.Style
	ToolbarActiveStyle  lipgloss.Style
	TooltipStyle        lipgloss.Style
	ModalStyle          lipgloss.Style
	ModalTitleStyle     lipgloss.Style
	ModalHelpStyle      lipgloss.Style
	ModalContextStyle   lipgloss.Style
	SliderLabelStyle    lipgloss.Style
	SliderSwatchPadding int
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TextMutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	SuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	HeaderButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorForeground)
	HeaderButtonOffStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	GutterStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	GutterActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
	TextStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	SelectionStyle = lipgloss.NewStyle().
		Background(ColorSurface)
	CursorStyle = lipgloss.NewStyle().
		Reverse(true)
	StatusStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	NoticeStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	PopoverStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary)
	ToolbarButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorForeground)
	ToolbarActiveStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	TooltipStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Foreground(ColorForeground).
		Padding(0, 1)
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalContextStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		MarginBottom(1)
	SliderLabelStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	SliderSwatchPadding = 1
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H2.Color = primary
	cfg.H3.Color = secondary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted
	cfg.Code.Color = secondary
	cfg.Table.Color = fg

	return cfg
}
