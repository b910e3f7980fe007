package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/app/diag"
	"folio/internal/app/ui/components"
	"folio/internal/config"
)

// View renders the UI
func (m Model) View() string {
	if !m.state.ready {
		return "Loading…"
	}

	if m.state.quitting {
		return ""
	}

	styles := components.NewStyles(components.PaletteFor(m.doc.Theme()))

	sections := []string{
		m.renderNavbar(styles),
		m.renderBody(styles),
		m.renderStatus(styles),
		m.renderFooter(styles),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderNavbar renders the top navigation bar with the active entry
// highlighted; the border sharpens once the document is scrolled
func (m Model) renderNavbar(styles components.Styles) string {
	state := m.controller.State()
	text := m.controller.Text()

	entries := make([]string, 0, len(m.controller.Items())+2)
	entries = append(entries, styles.Logo.Render(components.NavbarLogoText))

	for _, item := range m.controller.Items() {
		if item.ID == state.ActiveSectionID {
			entries = append(entries, styles.NavActive.Render(item.Name))
			continue
		}

		entries = append(entries, styles.NavItem.Render(item.Name))
	}

	trigger := text.OpenMenu
	if state.IsMenuOpen {
		trigger = text.CloseMenu
	}

	if m.doc.Focus() == FocusMenuTrigger {
		entries = append(entries, styles.MenuFocus.Render(trigger))
	} else {
		entries = append(entries, styles.NavItem.Render(trigger))
	}

	bar := strings.Join(entries, "   ")

	border := " "
	if state.IsScrolled() {
		border = "─"
	}

	lines := []string{
		bar,
		styles.NavBorder.Render(strings.Repeat(border, max(m.ui.width, 1))),
	}

	for len(lines) < m.cfg.Navbar.Height {
		lines = append(lines, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderBody renders the scrolled document, or the menu overlay on top of it
func (m Model) renderBody(styles components.Styles) string {
	if m.controller.State().IsMenuOpen {
		return m.renderMenu(styles)
	}

	return styles.Body.Render(m.ui.viewport.View())
}

// renderMenu renders the compact navigation menu
func (m Model) renderMenu(styles components.Styles) string {
	items := m.controller.Items()
	text := m.controller.Text()

	lines := make([]string, 0, len(items)+2)
	lines = append(lines, styles.SectionHead.Render(text.CloseMenu))

	for i, item := range items {
		if i == m.state.menuCursor {
			lines = append(lines, styles.MenuCursor.Render("> "+item.Name))
			continue
		}

		lines = append(lines, styles.MenuItem.Render(item.Name))
	}

	lines = append(lines, styles.MenuItem.Render(text.DownloadCV))

	menu := lipgloss.JoinVertical(lipgloss.Left, lines...)

	return lipgloss.Place(
		m.ui.viewport.Width,
		m.ui.viewport.Height,
		lipgloss.Center,
		lipgloss.Center,
		menu,
	)
}

// renderStatus renders the status line with fragment and announcements
func (m Model) renderStatus(styles components.Styles) string {
	parts := []string{
		styles.Status.Render(m.provider.Language()),
	}

	if fragment := m.doc.Fragment(); fragment != "" {
		parts = append(parts, styles.Status.Render(fragment))
	}

	if m.controller.State().IsScrolled() {
		parts = append(parts, styles.Status.Render("g "+m.controller.Text().BackToTop))
	}

	if m.doc.Transitioning() {
		parts = append(parts, styles.Status.Render("…"))
	}

	if m.state.announcement != "" {
		parts = append(parts, styles.Announce.Render(m.state.announcement))
	}

	line := strings.Join(parts, "  ")

	return components.Truncate(line, max(m.ui.width, 1))
}

// renderFooter renders help, version and the optional stats overlay
func (m Model) renderFooter(styles components.Styles) string {
	left := styles.Help.Render(m.ui.help.View(m.ui.keys))

	right := fmt.Sprintf("v%s", config.Version)
	if m.state.showStats {
		right = fmt.Sprintf("cpu %s • mem %s • %s",
			diag.FormatCPU(m.state.stats.CPU),
			diag.FormatMEM(m.state.stats.MEM),
			right,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, left, styles.Status.Render(right))
}
