package navbar

import (
	"go.uber.org/fx"

	"folio/internal/app/bus"
	"folio/internal/app/content"
	"folio/internal/app/theme"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// Module provides the navigation controller for dependency injection
var Module = fx.Module("navbar",
	fx.Provide(func(
		cfg *config.Config,
		provider content.Provider,
		store theme.Store,
		dom DomPort,
		announce Announcer,
		b bus.Bus,
		log logger.Logger,
	) Controller {
		return New(cfg, provider, store, dom, announce, b, log.WithComponent("NAVBAR"))
	}),
)
