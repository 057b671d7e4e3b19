package ingest

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GofMan5/Antigravity-Manager/internal/app/console"
	"github.com/GofMan5/Antigravity-Manager/internal/app/telemetry"
	"github.com/GofMan5/Antigravity-Manager/internal/config"
	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

func newTestAdapter(t *testing.T, ignores []string) (*adapter, console.Console) {
	t.Helper()

	log := logger.NewLoggerWithOutput(config.DefaultConfig(), io.Discard)

	follow := console.NewFollowController(log)

	cons, err := console.New(console.Options{
		Capacity:   100,
		Levels:     console.NewLevelSet(console.Levels...),
		AutoScroll: true,
	}, follow, log)
	require.NoError(t, err)

	matcher, err := telemetry.NewMatcher(ignores)
	require.NoError(t, err)

	stream := telemetry.NewStream(16)
	t.Cleanup(stream.Close)

	return New(stream, matcher, cons, log).(*adapter), cons
}

func Test_Adapter_AppendsValidRecord(t *testing.T) {
	a, cons := newTestAdapter(t, nil)

	a.handle([]byte(`{"timestamp":1700000000000,"level":"error","target":"proxy::upstream","message":"Connection Reset","fields":{"status":"502"}}`))

	entries := cons.Snapshot()
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, uint64(1), entry.ID)
	assert.Equal(t, int64(1700000000000), entry.Timestamp)
	assert.Equal(t, console.LevelError, entry.Level)
	assert.Equal(t, "proxy::upstream", entry.Target)
	assert.Equal(t, "Connection Reset", entry.Message)
	assert.Equal(t, console.Fields{{Key: "status", Value: "502"}}, entry.Fields)

	assert.Zero(t, a.Dropped())
	assert.Zero(t, a.Ignored())
}

func Test_Adapter_DropsMalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"invalid json", `{"level":`},
		{"unknown level", `{"timestamp":1,"level":"fatal","message":"m"}`},
		{"missing timestamp", `{"level":"info","message":"m"}`},
		{"missing message", `{"timestamp":1,"level":"info"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, cons := newTestAdapter(t, nil)

			a.handle([]byte(tt.line))

			assert.Equal(t, uint64(1), a.Dropped())
			assert.Empty(t, cons.Snapshot())
		})
	}
}

func Test_Adapter_DroppedCountAccumulates(t *testing.T) {
	a, cons := newTestAdapter(t, nil)

	a.handle([]byte(`garbage`))
	a.handle([]byte(`{"timestamp":1,"level":"info","message":"ok"}`))
	a.handle([]byte(`{"timestamp":2,"level":"shout","message":"bad"}`))

	assert.Equal(t, uint64(2), a.Dropped())
	assert.Len(t, cons.Snapshot(), 1)
}

func Test_Adapter_IgnoredTargets(t *testing.T) {
	a, cons := newTestAdapter(t, []string{"hyper::**"})

	a.handle([]byte(`{"timestamp":1,"level":"debug","target":"hyper::client::pool","message":"noise"}`))
	a.handle([]byte(`{"timestamp":2,"level":"info","target":"app::startup","message":"starting"}`))

	assert.Equal(t, uint64(1), a.Ignored())
	assert.Zero(t, a.Dropped())

	entries := cons.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "app::startup", entries[0].Target)
}

func Test_Adapter_PreservesArrivalOrder(t *testing.T) {
	a, cons := newTestAdapter(t, nil)

	a.handle([]byte(`{"timestamp":3,"level":"info","message":"first"}`))
	a.handle([]byte(`{"timestamp":1,"level":"info","message":"second"}`))
	a.handle([]byte(`{"timestamp":2,"level":"info","message":"third"}`))

	entries := cons.Snapshot()
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "third", entries[2].Message)
}

func Test_Adapter_StartConsumesStream(t *testing.T) {
	log := logger.NewLoggerWithOutput(config.DefaultConfig(), io.Discard)

	follow := console.NewFollowController(log)

	cons, err := console.New(console.Options{
		Capacity:   10,
		Levels:     console.NewLevelSet(console.Levels...),
		AutoScroll: true,
	}, follow, log)
	require.NoError(t, err)

	matcher, err := telemetry.NewMatcher(nil)
	require.NoError(t, err)

	stream := telemetry.NewStream(16)
	defer stream.Close()

	a := New(stream, matcher, cons, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.Start(ctx)

	stream.Publish([]byte(`{"timestamp":1,"level":"warn","message":"queued"}`))

	require.Eventually(t, func() bool {
		return len(cons.Snapshot()) == 1
	}, time.Second, 10*time.Millisecond)
}

func Test_Normalize_LevelCaseInsensitive(t *testing.T) {
	record := telemetry.Record{
		Timestamp:    1,
		HasTimestamp: true,
		Level:        "WARNING",
		Message:      "m",
		HasMessage:   true,
	}

	entry, err := normalize(record)
	require.NoError(t, err)
	assert.Equal(t, console.LevelWarn, entry.Level)
}
