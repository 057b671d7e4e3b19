package console

import (
	"go.uber.org/fx"

	"github.com/GofMan5/Antigravity-Manager/internal/config"
	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

// Module provides the console engine for dependency injection
var Module = fx.Module("console",
	fx.Provide(
		func(log logger.Logger) *FollowController {
			return NewFollowController(log.WithComponent("FOLLOW"))
		},
		func(cfg *config.Config, follow *FollowController, log logger.Logger) (Console, error) {
			opts, err := OptionsFromConfig(cfg)
			if err != nil {
				return nil, err
			}

			return New(opts, follow, log.WithComponent("CONSOLE"))
		},
		NewSystemClipboard,
		NewDirFileWriter,
		func(clipboard Clipboard, files FileWriter, log logger.Logger) *Formatter {
			return NewFormatter(clipboard, files, log.WithComponent("EXPORT"))
		},
	),
)
