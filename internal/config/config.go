package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/GofMan5/Antigravity-Manager/internal/app/errors"
)

// ConfigFile is the name of the optional configuration file
const ConfigFile = "antigravity.yaml"

// Config represents the application configuration
type Config struct {
	Console struct {
		Capacity   int      `yaml:"capacity"`
		Levels     []string `yaml:"levels"`
		Search     string   `yaml:"search"`
		AutoScroll bool     `yaml:"autoscroll"`
	}
	Ingest struct {
		Buffer int      `yaml:"buffer"`
		Input  string   `yaml:"input"`
		Ignore []string `yaml:"ignore"`
	}
	Export struct {
		Dir string `yaml:"dir"`
	}
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Console.Capacity = DefaultCapacity
	cfg.Console.Levels = []string{"error", "warn", "info", "debug", "trace"}
	cfg.Console.Search = ""
	cfg.Console.AutoScroll = DefaultAutoScroll

	cfg.Ingest.Buffer = DefaultStreamBuffer

	cfg.Export.Dir = DefaultExportDir

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	return cfg
}

// Load loads the configuration from .env and antigravity.yaml, falling back
// to defaults when the file is absent
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, errors.ErrFailedToReadConfig
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalizeLevels()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Console.Capacity < 1 {
		return errors.ErrInvalidCapacity
	}

	if c.Ingest.Buffer < 1 {
		return errors.ErrInvalidConfig
	}

	if c.Export.Dir == "" {
		return errors.ErrInvalidExportDir
	}

	switch c.Logging.Format {
	case "console", "json", "":
	default:
		return fmt.Errorf("%w: '%s' (must be 'console' or 'json')", errors.ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// normalizeLevels trims and lowercases the configured level names
func (c *Config) normalizeLevels() {
	for i, level := range c.Console.Levels {
		c.Console.Levels[i] = strings.ToLower(strings.TrimSpace(level))
	}
}
