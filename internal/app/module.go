package app

import (
	"go.uber.org/fx"

	"folio/internal/app/announce"
	"folio/internal/app/bus"
	"folio/internal/app/cli"
	"folio/internal/app/content"
	"folio/internal/app/diag"
	"folio/internal/app/navbar"
	"folio/internal/app/theme"
	"folio/internal/app/ui"
)

// Module aggregates the application modules
var Module = fx.Options(
	bus.Module,
	content.Module,
	theme.Module,
	announce.Module,
	diag.Module,
	navbar.Module,
	ui.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
