// Package config loads process configuration from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Config holds the settings shared by every rpg-battle command.
type Config struct {
	LogLevel string `env:"RPG_BATTLE_LOG_LEVEL" envDefault:"info"`
	// RedisAddr selects the Redis report store. Empty keeps reports in memory.
	RedisAddr   string        `env:"RPG_BATTLE_REDIS_ADDR"`
	ReportTTL   time.Duration `env:"RPG_BATTLE_REPORT_TTL"   envDefault:"24h"`
	CatalogPath string        `env:"RPG_BATTLE_CATALOG_PATH"`
	SimWorkers  int           `env:"RPG_BATTLE_SIM_WORKERS"  envDefault:"4"`
	MaxRounds   int           `env:"RPG_BATTLE_MAX_ROUNDS"   envDefault:"100"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the parsed values.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", errors.GetMessage(err))
	}
	if c.ReportTTL < 0 {
		vb.Field("ReportTTL", "must not be negative")
	}
	errors.ValidateRange("SimWorkers", c.SimWorkers, 1, 256, vb)
	if c.MaxRounds < 0 {
		vb.Field("MaxRounds", "must not be negative")
	}

	return vb.Build()
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", s)
	}
}
