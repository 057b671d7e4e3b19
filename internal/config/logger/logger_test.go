package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/GofMan5/Antigravity-Manager/internal/config"
)

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		expected zerolog.Level
	}{
		{"Default", config.DefaultLogLevel, ConsoleFormat, zerolog.InfoLevel},
		{"Debug level", DebugLevel, ConsoleFormat, zerolog.DebugLevel},
		{"Warn level and json format", WarnLevel, JSONFormat, zerolog.WarnLevel},
		{"Empty level and format (defaults)", "", "", zerolog.InfoLevel},
		{"Error level", ErrorLevel, ConsoleFormat, zerolog.ErrorLevel},
		{"Trace level", TraceLevel, ConsoleFormat, zerolog.TraceLevel},
		{"Unknown format (defaults to console)", InfoLevel, "unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			logger := NewLogger(cfg)
			assert.NotNil(t, logger)

			appLogger, ok := logger.(*AppLogger)
			assert.True(t, ok)

			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
		})
	}
}

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{"Trace", TraceLevel, zerolog.TraceLevel},
		{"Debug", DebugLevel, zerolog.DebugLevel},
		{"Info", InfoLevel, zerolog.InfoLevel},
		{"Warn", WarnLevel, zerolog.WarnLevel},
		{"Error", ErrorLevel, zerolog.ErrorLevel},
		{"Unknown", "unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := getLogLevel(tt.level)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func Test_Logger_WithComponent(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = DebugLevel

	logger := NewLoggerWithOutput(cfg, &buf).WithComponent("CONSOLE")
	logger.Debug().Msg("component message")

	assert.Contains(t, buf.String(), `"component":"CONSOLE"`)
	assert.Contains(t, buf.String(), "component message")
}

func Test_Logger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = WarnLevel

	logger := NewLoggerWithOutput(cfg, &buf)
	logger.Debug().Msg("suppressed")
	logger.Warn().Msg("emitted")

	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "emitted")
}

func Test_Logger_VersionField(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerWithOutput(config.DefaultConfig(), &buf)
	logger.Info().Msg("tagged")

	assert.Contains(t, buf.String(), config.Version)
}

func Test_AppLogger_AllMethods(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = TraceLevel

	logger := NewLoggerWithOutput(cfg, &buf)

	assert.NotNil(t, logger.Trace())
	assert.NotNil(t, logger.Debug())
	assert.NotNil(t, logger.Info())
	assert.NotNil(t, logger.Warn())
	assert.NotNil(t, logger.Error())
}

func Test_zerologEvent(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = DebugLevel

	logger := NewLoggerWithOutput(cfg, &buf)

	event := logger.Debug()

	assert.NotNil(t, event.Str("key", "value"))
	assert.NotNil(t, event.Int("count", 42))
	assert.NotNil(t, event.Dur("duration", time.Second))
	assert.NotNil(t, event.Err(errors.New("test error")))

	event.Msg("test message")

	assert.Contains(t, buf.String(), "test message")
}
