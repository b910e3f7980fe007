package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"folio/internal/app/bus"
	"folio/internal/app/content"
	"folio/internal/app/diag"
	"folio/internal/app/navbar"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// UI creates a Bubble Tea program for the portfolio view
type UI func(ctx context.Context) (*tea.Program, error)

// Module provides the document surface and the UI factory
var Module = fx.Options(
	fx.Provide(NewDocument),
	fx.Provide(func(doc *Document) navbar.DomPort { return doc }),
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Cfg        *config.Config
	Bus        bus.Bus
	Controller navbar.Controller
	Provider   content.Provider
	Doc        *Document
	Collector  diag.Collector
	Logger     logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		model := NewModel(
			ctx,
			params.Cfg,
			params.Bus,
			params.Controller,
			params.Provider,
			params.Doc,
			params.Collector,
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
