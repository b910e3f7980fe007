package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the palette-resolved styles for one frame
type Styles struct {
	Logo        lipgloss.Style
	NavItem     lipgloss.Style
	NavActive   lipgloss.Style
	NavBorder   lipgloss.Style
	SectionHead lipgloss.Style
	Body        lipgloss.Style
	Status      lipgloss.Style
	Announce    lipgloss.Style
	Help        lipgloss.Style
	MenuItem    lipgloss.Style
	MenuCursor  lipgloss.Style
	MenuFocus   lipgloss.Style
}

// NewStyles resolves the styles for a palette
func NewStyles(p Palette) Styles {
	return Styles{
		Logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		NavItem: lipgloss.NewStyle().
			Foreground(p.Muted),
		NavActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Underline(true),
		NavBorder: lipgloss.NewStyle().
			Foreground(p.Border),
		SectionHead: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Body: lipgloss.NewStyle().
			Foreground(p.Text),
		Status: lipgloss.NewStyle().
			Foreground(p.Muted),
		Announce: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Primary),
		Help: lipgloss.NewStyle().
			Foreground(p.Border),
		MenuItem: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 2),
		MenuCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Background(p.Highlight).
			Padding(0, 2),
		MenuFocus: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Reverse(true),
	}
}

// RenderLine renders a horizontal separator line of the given width
func (s Styles) RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return s.NavBorder.Render(strings.Repeat("─", width))
}

// Truncate shortens a string to maxWidth, appending an ellipsis
func Truncate(str string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(str) <= maxWidth {
		return str
	}

	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(str)
	if len(runes) > maxWidth-1 {
		runes = runes[:maxWidth-1]
	}

	return string(runes) + "…"
}
