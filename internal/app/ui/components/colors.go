package components

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/app/theme"
)

// Palette holds the semantic colors for one theme
type Palette struct {
	Primary   lipgloss.Color // accents, active navigation entry
	Text      lipgloss.Color // body text
	Muted     lipgloss.Color // secondary text
	Border    lipgloss.Color // separators, help text
	Highlight lipgloss.Color // menu selection background
}

var darkPalette = Palette{
	Primary:   lipgloss.Color("#a78bfa"),
	Text:      lipgloss.Color("#e5e7eb"),
	Muted:     lipgloss.Color("#9ca3af"),
	Border:    lipgloss.Color("#4b5563"),
	Highlight: lipgloss.Color("#312e81"),
}

var lightPalette = Palette{
	Primary:   lipgloss.Color("#7c3aed"),
	Text:      lipgloss.Color("#1f2937"),
	Muted:     lipgloss.Color("#6b7280"),
	Border:    lipgloss.Color("#d1d5db"),
	Highlight: lipgloss.Color("#ddd6fe"),
}

// PaletteFor returns the palette matching the theme; this is the terminal
// analog of toggling the light/dark class on the document root
func PaletteFor(t theme.Theme) Palette {
	if t == theme.Light {
		return lightPalette
	}

	return darkPalette
}
