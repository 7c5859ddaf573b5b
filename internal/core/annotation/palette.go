package annotation

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Rating bounds accepted by the slider.
const (
	MinRating = 0
	MaxRating = 100
)

// DefaultBackground is the slider background when no rating is active.
const DefaultBackground = "#ffffff"

// Palette maps a rating onto a fixed list of hex colors, lowest rating first.
type Palette []string

// DefaultPalette runs from red (poor) to green (good).
func DefaultPalette() Palette {
	return Palette{
		"#f71402",
		"#ed7066",
		"#f5aa69",
		"#f2770c",
		"#89eb75",
		"#1d9c03",
	}
}

// ParsePalette validates and normalizes a list of hex colors.
func ParsePalette(stops []string) (Palette, error) {
	if len(stops) < 2 {
		return nil, errors.New("palette needs at least two colors")
	}

	p := make(Palette, 0, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: invalid hex color %q", i, s)
		}
		p = append(p, c.Hex())
	}
	return p, nil
}

// Index returns the palette slot for value. The value is clamped to
// [MinRating, MaxRating] and bucketed as floor(value/100 * (len-1)).
func (p Palette) Index(value int) int {
	if len(p) == 0 {
		return 0
	}
	value = min(max(value, MinRating), MaxRating)
	return value * (len(p) - 1) / MaxRating
}

// Color returns the background color for a rating value.
func (p Palette) Color(value int) string {
	if len(p) == 0 {
		return DefaultBackground
	}
	return p[p.Index(value)]
}
