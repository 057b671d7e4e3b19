package ui

import "go.uber.org/fx"

// Module provides the console view for dependency injection
var Module = fx.Module("ui",
	fx.Provide(
		NewSender,
		New,
	),
)
