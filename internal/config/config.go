// Package config loads runtime configuration from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// Config holds settings shared by the commands
type Config struct {
	LogLevel string `env:"DRDPLUS_LOG_LEVEL" envDefault:"info"`
	// TablesFile overrides the embedded rules tables when set
	TablesFile string              `env:"DRDPLUS_TABLES_FILE"`
	Fate       properties.FateCode `env:"DRDPLUS_FATE" envDefault:"combination_of_properties_and_background"`
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	if !c.Fate.IsValid() {
		vb.InvalidField("Fate", string(c.Fate))
	}
	return vb.Build()
}

// Level returns the slog level of LogLevel
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load parses and validates config from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
