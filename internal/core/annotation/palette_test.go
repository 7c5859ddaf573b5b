package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette_Color(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		value int
		want  string
	}{
		{value: 0, want: p[0]},
		{value: 19, want: p[0]},
		{value: 20, want: p[1]},
		{value: 50, want: p[2]},
		{value: 99, want: p[4]},
		{value: 100, want: p[5]},
		{value: -10, want: p[0]},
		{value: 250, want: p[5]},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Color(tt.value), "value %d", tt.value)
	}
}

func TestPalette_EmptyFallsBackToDefault(t *testing.T) {
	var p Palette
	assert.Equal(t, DefaultBackground, p.Color(50))
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#FF0000", "#00ff00"})
	require.NoError(t, err)
	assert.Equal(t, Palette{"#ff0000", "#00ff00"}, p)

	_, err = ParsePalette([]string{"#ff0000"})
	require.Error(t, err)

	_, err = ParsePalette([]string{"#ff0000", "green"})
	require.ErrorContains(t, err, "palette[1]")
}
