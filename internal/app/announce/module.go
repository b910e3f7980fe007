package announce

import (
	"go.uber.org/fx"
)

// Module provides the assistive announcer for dependency injection
var Module = fx.Options(
	fx.Provide(NewBusAnnouncer),
)
