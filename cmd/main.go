package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/GofMan5/Antigravity-Manager/internal/app"
	"github.com/GofMan5/Antigravity-Manager/internal/app/cli"
	"github.com/GofMan5/Antigravity-Manager/internal/config"
	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := createApp(cfg, opts)
	application.Run()
}

// loadConfig loads the configuration and applies CLI overrides
func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if opts.Capacity != 0 {
		cfg.Console.Capacity = opts.Capacity
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// createApp creates the FX application with the given config and options
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	// With the TUI active, logger output would corrupt the screen
	var logOutput io.Writer
	if !opts.NoUI {
		logOutput = io.Discard
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, opts),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
