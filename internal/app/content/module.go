package content

import (
	"context"

	"go.uber.org/fx"

	"folio/internal/app/bus"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// Module provides the content dependencies and starts the locale watcher
var Module = fx.Module("content",
	fx.Provide(func(cfg *config.Config, b bus.Bus, log logger.Logger) (Provider, error) {
		return NewProvider(cfg, b, log.WithComponent("CONTENT"))
	}),
	fx.Provide(NewWatcher),
	fx.Invoke(func(lifecycle fx.Lifecycle, w Watcher) {
		lifecycle.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return w.Start()
			},
			OnStop: func(ctx context.Context) error {
				w.Close()
				return nil
			},
		})
	}),
)
