package ingest

import (
	"context"
	"sync/atomic"

	"github.com/GofMan5/Antigravity-Manager/internal/app/console"
	"github.com/GofMan5/Antigravity-Manager/internal/app/errors"
	"github.com/GofMan5/Antigravity-Manager/internal/app/telemetry"
	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

// Adapter normalizes raw telemetry records into console entries. Malformed
// records are dropped and counted, never fatal; arrival order is preserved
// and appends never block.
type Adapter interface {
	Start(ctx context.Context)
	Dropped() uint64
	Ignored() uint64
}

// adapter implements the Adapter interface
type adapter struct {
	stream  telemetry.Stream
	matcher telemetry.Matcher
	console console.Console
	log     logger.Logger
	dropped atomic.Uint64
	ignored atomic.Uint64
}

// New creates an ingestion adapter
func New(stream telemetry.Stream, matcher telemetry.Matcher, cons console.Console, log logger.Logger) Adapter {
	return &adapter{
		stream:  stream,
		matcher: matcher,
		console: cons,
		log:     log,
	}
}

// Start subscribes to the telemetry stream and consumes it until ctx ends
func (a *adapter) Start(ctx context.Context) {
	lines := a.stream.Subscribe(ctx)

	go a.consume(lines)
}

// Dropped returns the number of malformed records dropped so far
func (a *adapter) Dropped() uint64 {
	return a.dropped.Load()
}

// Ignored returns the number of records suppressed by ignore patterns
func (a *adapter) Ignored() uint64 {
	return a.ignored.Load()
}

func (a *adapter) consume(lines <-chan []byte) {
	for line := range lines {
		a.handle(line)
	}
}

func (a *adapter) handle(line []byte) {
	record, err := telemetry.ParseRecord(line)
	if err != nil {
		a.drop(err)

		return
	}

	entry, err := normalize(record)
	if err != nil {
		a.drop(err)

		return
	}

	if a.matcher.Ignored(entry.Target) {
		a.ignored.Add(1)

		return
	}

	a.console.Append(entry)
}

func (a *adapter) drop(err error) {
	a.dropped.Add(1)
	a.log.Debug().Err(err).Msg("dropped malformed record")
}

// normalize converts a raw record to an entry, rejecting records without a
// known level, a timestamp, or a message
func normalize(record telemetry.Record) (console.Entry, error) {
	level, err := console.ParseLevel(record.Level)
	if err != nil {
		return console.Entry{}, err
	}

	if !record.HasTimestamp {
		return console.Entry{}, errors.ErrMissingTimestamp
	}

	if !record.HasMessage {
		return console.Entry{}, errors.ErrMissingMessage
	}

	fields := make(console.Fields, 0, len(record.Fields))
	for _, field := range record.Fields {
		fields = append(fields, console.Field{Key: field.Key, Value: field.Value})
	}

	return console.Entry{
		Timestamp: record.Timestamp,
		Level:     level,
		Target:    record.Target,
		Message:   record.Message,
		Fields:    fields,
	}, nil
}
