package theme

import (
	"go.uber.org/fx"
)

// Module provides theme persistence for dependency injection
var Module = fx.Options(
	fx.Provide(NewDefaultStore),
)
