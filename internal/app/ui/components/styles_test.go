package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"folio/internal/app/theme"
)

func Test_PaletteFor(t *testing.T) {
	assert.Equal(t, darkPalette, PaletteFor(theme.Dark))
	assert.Equal(t, lightPalette, PaletteFor(theme.Light))

	// unknown values render dark
	assert.Equal(t, darkPalette, PaletteFor(theme.Theme("sepia")))
}

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{name: "fits", input: "short", maxWidth: 10, expected: "short"},
		{name: "exact", input: "short", maxWidth: 5, expected: "short"},
		{name: "truncated", input: "a longer string", maxWidth: 8, expected: "a longe…"},
		{name: "single column", input: "abc", maxWidth: 1, expected: "…"},
		{name: "zero width", input: "abc", maxWidth: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func Test_RenderLine(t *testing.T) {
	styles := NewStyles(PaletteFor(theme.Dark))

	assert.Equal(t, "", styles.RenderLine(0))
	assert.Equal(t, "", styles.RenderLine(-3))
	assert.Len(t, []rune(styles.RenderLine(4)), 4)
}
