package app

import (
	"go.uber.org/fx"

	"github.com/GofMan5/Antigravity-Manager/internal/app/console"
	"github.com/GofMan5/Antigravity-Manager/internal/app/ingest"
	"github.com/GofMan5/Antigravity-Manager/internal/app/telemetry"
	"github.com/GofMan5/Antigravity-Manager/internal/app/ui"
)

// Module aggregates the application's fx modules
var Module = fx.Options(
	console.Module,
	telemetry.Module,
	ingest.Module,
	ui.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
