package diag

import (
	"go.uber.org/fx"
)

// Module provides the process stats collector for dependency injection
var Module = fx.Options(
	fx.Provide(NewCollector),
)
