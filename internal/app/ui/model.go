package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/app/bus"
	"folio/internal/app/content"
	"folio/internal/app/diag"
	"folio/internal/app/navbar"
	"folio/internal/app/ui/components"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// Model represents the Bubble Tea model for the portfolio view
type Model struct {
	ctx        context.Context
	cfg        *config.Config
	bus        bus.Bus
	controller navbar.Controller
	provider   content.Provider
	doc        *Document
	collector  diag.Collector
	msgChan    <-chan bus.Message

	state struct {
		announcement string
		menuCursor   int
		showStats    bool
		stats        diag.Stats
		ready        bool
		quitting     bool
	}

	ui struct {
		width       int
		height      int
		keys        components.KeyMap
		help        help.Model
		viewport    viewport.Model
		tickCounter int
	}

	log logger.Logger
}

// NewModel creates the portfolio view model
func NewModel(
	ctx context.Context,
	cfg *config.Config,
	b bus.Bus,
	controller navbar.Controller,
	provider content.Provider,
	doc *Document,
	collector diag.Collector,
	log logger.Logger,
) Model {
	log = log.WithComponent("UI")
	msgChan := b.Subscribe(ctx)

	log.Debug().Msg("Created model and subscribed to events")

	m := Model{
		ctx:        ctx,
		cfg:        cfg,
		bus:        b,
		controller: controller,
		provider:   provider,
		doc:        doc,
		collector:  collector,
		msgChan:    msgChan,
		log:        log,
	}

	m.ui.keys = components.DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.viewport = viewport.New(0, 0)
	m.state.showStats = cfg.Stats.Enabled

	return m
}

// Init mounts the controller and starts the UI loops
func (m Model) Init() tea.Cmd {
	m.controller.Initialize(m.ctx)

	cmds := []tea.Cmd{
		waitForMsgCmd(m.msgChan),
		tickCmd(),
	}

	if m.state.showStats {
		cmds = append(cmds, statsCmd(m.collector))
	}

	return tea.Batch(cmds...)
}

// contentWidth returns the width available for the document body
func (m Model) contentWidth() int {
	if m.ui.width <= 0 {
		return components.DefaultWidth
	}

	return m.ui.width
}

// rebuildDocument re-renders the document and refreshes the viewport content
func (m *Model) rebuildDocument() {
	m.doc.Rebuild(m.provider.Sections(), m.contentWidth())
	m.ui.viewport.SetContent(strings.Join(m.doc.Lines(), "\n"))
}

// syncScroll reconciles the spring and the viewport after manual scrolling
func (m *Model) syncScroll() {
	m.doc.Scroll().Jump(m.ui.viewport.YOffset)
	m.controller.HandleScroll(m.ui.viewport.YOffset)
}

// activeIndex returns the index of the active section in the nav items
func (m Model) activeIndex() int {
	active := m.controller.State().ActiveSectionID

	for i, item := range m.controller.Items() {
		if item.ID == active {
			return i
		}
	}

	return 0
}
