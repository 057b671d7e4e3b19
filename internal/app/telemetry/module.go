package telemetry

import (
	"go.uber.org/fx"

	"github.com/GofMan5/Antigravity-Manager/internal/config"
)

// Module provides the telemetry boundary for dependency injection
var Module = fx.Module("telemetry",
	fx.Provide(
		func(cfg *config.Config) Stream {
			return NewStream(cfg.Ingest.Buffer)
		},
		func(cfg *config.Config) (Matcher, error) {
			return NewMatcher(cfg.Ingest.Ignore)
		},
	),
)
