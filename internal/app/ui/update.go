package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/app/bus"
	"folio/internal/app/diag"
	"folio/internal/app/ui/components"
	"folio/internal/config"
)

// Tick timing constants
const (
	tickInterval       = components.UITickInterval
	tickCounterMaximum = 1000000

	statsInterval = 2 * time.Second
)

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// tickMsg signals a UI tick for the scroll spring and the section scan
type tickMsg time.Time

// statsMsg carries a fresh resource sample for the footer overlay
type statsMsg diag.Stats

// channelClosedMsg signals the event channel has closed
type channelClosedMsg struct{}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		viewportHeight := msg.Height - m.cfg.Navbar.Height - components.StatusBarHeight - components.FooterHeight
		if viewportHeight < components.MinViewportHeight {
			viewportHeight = components.MinViewportHeight
		}

		m.ui.viewport.Width = msg.Width
		m.ui.viewport.Height = viewportHeight

		m.rebuildDocument()

		if !m.state.ready {
			m.state.ready = true
		}

		return m, nil

	case tickMsg:
		return m.handleTick()

	case statsMsg:
		m.state.stats = diag.Stats(msg)

		if m.state.showStats {
			return m, statsCmd(m.collector)
		}

		return m, nil

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		m.log.Warn().Msg("TUI: Event channel closed, quitting")

		return m, tea.Quit
	}

	return m, nil
}

// handleTick advances the scroll spring and runs the frame scan
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ui.tickCounter++

	if m.ui.tickCounter >= tickCounterMaximum {
		m.ui.tickCounter = 0
	}

	if m.doc.Scroll().Animating() {
		offset, settled := m.doc.Scroll().Update()
		m.ui.viewport.SetYOffset(offset)
		m.controller.HandleScroll(offset)

		if settled {
			m.controller.ScrollSettled()
		}
	}

	m.controller.OnFrame()
	m.doc.ExpireTransition(config.ThemeTransitionDelay)

	return m, tickCmd()
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		m.log.Warn().Msg("TUI: Force quit requested, exiting immediately")

		return m, tea.Quit
	}

	if m.controller.State().IsMenuOpen {
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.ui.keys.Quit):
		m.state.quitting = true

		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Help):
		m.ui.help.ShowAll = !m.ui.help.ShowAll

		return m, nil

	case key.Matches(msg, m.ui.keys.Menu):
		m.state.menuCursor = m.activeIndex()
		m.controller.ToggleMobileMenu()

		return m, nil

	case key.Matches(msg, m.ui.keys.Top):
		m.controller.HandleLogoClick()

		return m, nil

	case key.Matches(msg, m.ui.keys.NextSection):
		return m.handleSectionStep(1)

	case key.Matches(msg, m.ui.keys.PrevSection):
		return m.handleSectionStep(-1)

	case key.Matches(msg, m.ui.keys.Theme):
		m.controller.ToggleTheme()

		return m, nil

	case key.Matches(msg, m.ui.keys.Language):
		m.provider.CycleLanguage()

		return m, nil

	case key.Matches(msg, m.ui.keys.DownloadCV):
		m.controller.DownloadCV()

		return m, nil

	case key.Matches(msg, m.ui.keys.Stats):
		m.state.showStats = !m.state.showStats
		if m.state.showStats {
			return m, statsCmd(m.collector)
		}

		return m, nil

	case key.Matches(msg, m.ui.keys.Up),
		key.Matches(msg, m.ui.keys.Down),
		key.Matches(msg, m.ui.keys.PageUp),
		key.Matches(msg, m.ui.keys.PageDown),
		key.Matches(msg, m.ui.keys.Bottom):
		var cmd tea.Cmd

		m.ui.viewport, cmd = m.ui.viewport.Update(msg)
		m.syncScroll()

		return m, cmd
	}

	return m, nil
}

// handleMenuKey processes keyboard input while the compact menu is open
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.controller.Items()

	switch {
	case key.Matches(msg, m.ui.keys.CloseMenu), key.Matches(msg, m.ui.keys.Menu):
		m.controller.CloseMenu()

	case key.Matches(msg, m.ui.keys.Up):
		if m.state.menuCursor > 0 {
			m.state.menuCursor--
		}

	case key.Matches(msg, m.ui.keys.Down):
		if m.state.menuCursor < len(items)-1 {
			m.state.menuCursor++
		}

	case key.Matches(msg, m.ui.keys.Select):
		if m.state.menuCursor >= 0 && m.state.menuCursor < len(items) {
			m.controller.CloseMenu()
			m.controller.HandleNavClick(items[m.state.menuCursor].ID)
		}
	}

	return m, nil
}

// handleSectionStep jumps to the section adjacent to the active one
func (m Model) handleSectionStep(step int) (tea.Model, tea.Cmd) {
	items := m.controller.Items()
	if len(items) == 0 {
		return m, nil
	}

	idx := m.activeIndex() + step
	if idx < 0 {
		idx = 0
	}

	if idx > len(items)-1 {
		idx = len(items) - 1
	}

	m.controller.HandleNavClick(items[idx].ID)

	return m, nil
}

// handleMessage dispatches bus messages to specific handlers
func (m Model) handleMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case bus.EventLanguageChanged, bus.EventContentReloaded:
		// the controller refreshes its own items; the view re-renders the body
		m.rebuildDocument()

	case bus.EventAnnounce:
		if data, ok := msg.Data.(bus.Announce); ok {
			m.state.announcement = data.Message
		}

	case bus.EventSectionChanged, bus.EventThemeChanged,
		bus.EventMenuToggled, bus.EventFragmentChanged:
		// state already lives in the controller and the document
	}

	return m, waitForMsgCmd(m.msgChan)
}

// waitForMsgCmd returns a command that waits for the next message
func waitForMsgCmd(msgChan <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgChan
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statsCmd schedules a single resource sample
func statsCmd(collector diag.Collector) tea.Cmd {
	return tea.Tick(statsInterval, func(time.Time) tea.Msg {
		stats, err := collector.Self()
		if err != nil {
			return statsMsg(diag.Stats{})
		}

		return statsMsg(stats)
	})
}
