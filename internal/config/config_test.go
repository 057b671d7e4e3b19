package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GofMan5/Antigravity-Manager/internal/app/errors"
)

// chdir changes the working directory for the duration of the test,
// mirroring t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(old)
	})
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultCapacity, cfg.Console.Capacity)
	assert.Equal(t, []string{"error", "warn", "info", "debug", "trace"}, cfg.Console.Levels)
	assert.Empty(t, cfg.Console.Search)
	assert.True(t, cfg.Console.AutoScroll)
	assert.Equal(t, DefaultStreamBuffer, cfg.Ingest.Buffer)
	assert.Equal(t, DefaultExportDir, cfg.Export.Dir)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)

	require.NoError(t, cfg.Validate())
}

func Test_Load_NoConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func Test_Load_ConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	content := `
console:
  capacity: 250
  levels: [" ERROR ", "Warn"]
  autoscroll: false
ingest:
  buffer: 64
  ignore: ["hyper::**"]
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(ConfigFile, []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Console.Capacity)
	assert.Equal(t, []string{"error", "warn"}, cfg.Console.Levels)
	assert.False(t, cfg.Console.AutoScroll)
	assert.Equal(t, 64, cfg.Ingest.Buffer)
	assert.Equal(t, []string{"hyper::**"}, cfg.Ingest.Ignore)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched sections keep their defaults
	assert.Equal(t, DefaultExportDir, cfg.Export.Dir)
}

func Test_Load_MalformedConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(ConfigFile, []byte("console: [not: a map"), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFailedToReadConfig))
}

func Test_Load_InvalidConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(ConfigFile, []byte("console:\n  capacity: 0\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.True(t, errors.Is(err, errors.ErrInvalidCapacity))
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults valid", func(c *Config) {}, nil},
		{"zero capacity", func(c *Config) { c.Console.Capacity = 0 }, errors.ErrInvalidCapacity},
		{"negative capacity", func(c *Config) { c.Console.Capacity = -5 }, errors.ErrInvalidCapacity},
		{"zero buffer", func(c *Config) { c.Ingest.Buffer = 0 }, errors.ErrInvalidConfig},
		{"empty export dir", func(c *Config) { c.Export.Dir = "" }, errors.ErrInvalidExportDir},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, errors.ErrInvalidLogFormat},
		{"json log format", func(c *Config) { c.Logging.Format = "json" }, nil},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func Test_NormalizeLevels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console.Levels = []string{" ERROR", "Warn ", "info"}

	cfg.normalizeLevels()

	assert.Equal(t, []string{"error", "warn", "info"}, cfg.Console.Levels)
}
