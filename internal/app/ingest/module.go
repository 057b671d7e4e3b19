package ingest

import (
	"go.uber.org/fx"

	"github.com/GofMan5/Antigravity-Manager/internal/app/console"
	"github.com/GofMan5/Antigravity-Manager/internal/app/telemetry"
	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

// Module provides the ingestion adapter for dependency injection
var Module = fx.Module("ingest",
	fx.Provide(
		func(stream telemetry.Stream, matcher telemetry.Matcher, cons console.Console, log logger.Logger) Adapter {
			return New(stream, matcher, cons, log.WithComponent("INGEST"))
		},
	),
)
