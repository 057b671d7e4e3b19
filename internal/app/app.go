package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/GofMan5/Antigravity-Manager/internal/app/cli"
	"github.com/GofMan5/Antigravity-Manager/internal/app/console"
	"github.com/GofMan5/Antigravity-Manager/internal/app/ingest"
	"github.com/GofMan5/Antigravity-Manager/internal/app/telemetry"
	"github.com/GofMan5/Antigravity-Manager/internal/app/ui"
	"github.com/GofMan5/Antigravity-Manager/internal/config"
	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

// App represents the main application container
type App struct {
	cfg     *config.Config
	opts    *cli.Options
	stream  telemetry.Stream
	adapter ingest.Adapter
	console console.Console
	view    ui.UI
	log     logger.Logger
	done    chan struct{}
}

// NewApp creates a new application instance with its dependencies
func NewApp(
	cfg *config.Config,
	opts *cli.Options,
	stream telemetry.Stream,
	adapter ingest.Adapter,
	cons console.Console,
	view ui.UI,
	log logger.Logger,
) *App {
	return &App{
		cfg:     cfg,
		opts:    opts,
		stream:  stream,
		adapter: adapter,
		console: cons,
		view:    view,
		log:     log.WithComponent("APP"),
		done:    make(chan struct{}),
	}
}

// Run executes the application
func (a *App) Run() {
	exitCode := a.execute()
	close(a.done)

	os.Exit(exitCode)
}

// execute runs the console flow and returns an exit code
func (a *App) execute() int {
	if a.opts.Type == cli.CommandVersion {
		fmt.Printf("%s v%s\n", config.AppName, config.Version)

		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	defer a.stream.Close()

	a.adapter.Start(ctx)

	if a.opts.NoUI {
		a.console.AddListener(func(event console.Event) {
			if event.Kind == console.EventAppend {
				fmt.Println(console.FormatLine(event.Entry))
			}
		})
	}

	sourceDone, err := a.startSource(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	if a.opts.NoUI {
		return a.runHeadless(ctx, sourceDone)
	}

	if err := a.view.Run(ctx); err != nil && ctx.Err() == nil {
		a.log.Error().Err(err).Msg("console view failed")

		return 1
	}

	return 0
}

// startSource starts the configured telemetry source and returns a channel
// closed when the source is exhausted
func (a *App) startSource(ctx context.Context) (<-chan struct{}, error) {
	done := make(chan struct{})

	input := a.cfg.Ingest.Input
	if a.opts.Input != "" {
		input = a.opts.Input
	}

	if input != "" {
		source, err := telemetry.NewFileSource(input, a.stream, a.log.WithComponent("TAIL"))
		if err != nil {
			return nil, err
		}

		go func() {
			defer close(done)

			if err := source.Run(ctx); err != nil {
				a.log.Error().Err(err).Msg("file source failed")
			}
		}()

		return done, nil
	}

	source := telemetry.NewReaderSource(os.Stdin, a.stream, a.log.WithComponent("STDIN"))

	go func() {
		defer close(done)

		source.Run(ctx)
	}()

	return done, nil
}

// runHeadless waits until the source ends or a signal arrives; the print
// listener is registered before the source starts
func (a *App) runHeadless(ctx context.Context, sourceDone <-chan struct{}) int {
	select {
	case <-ctx.Done():
	case <-sourceDone:
	}

	a.log.Debug().Msgf("ingested %d entries, dropped %d, ignored %d",
		len(a.console.Snapshot()), a.adapter.Dropped(), a.adapter.Ignored())

	return 0
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
