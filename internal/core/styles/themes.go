package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Primary:    lipgloss.Color("#89b4fa"),
		Secondary:  lipgloss.Color("#94e2d5"),
		Foreground: lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#6c7086"),
		Background: lipgloss.Color("#1e1e2e"),
		Surface:    lipgloss.Color("#313244"),
		Success:    lipgloss.Color("#a6e3a1"),
		Warning:    lipgloss.Color("#f9e2af"),
		Error:      lipgloss.Color("#f38ba8"),
	},
	// Light theme for terminals with a white background; the default rating
	// background reads better against it.
	"paper": {
		Primary:    lipgloss.Color("#2e7de9"),
		Secondary:  lipgloss.Color("#007197"),
		Foreground: lipgloss.Color("#3760bf"),
		Muted:      lipgloss.Color("#8990b3"),
		Background: lipgloss.Color("#ffffff"),
		Surface:    lipgloss.Color("#e1e2e7"),
		Success:    lipgloss.Color("#587539"),
		Warning:    lipgloss.Color("#8c6c3e"),
		Error:      lipgloss.Color("#f52a65"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
