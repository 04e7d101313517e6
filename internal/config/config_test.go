package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal("info", cfg.LogLevel)
	s.Equal(slog.LevelInfo, cfg.Level())
	s.Empty(cfg.RedisAddr)
	s.Equal(24*time.Hour, cfg.ReportTTL)
	s.Empty(cfg.CatalogPath)
	s.Equal(4, cfg.SimWorkers)
	s.Equal(100, cfg.MaxRounds)
}

func (s *ConfigTestSuite) TestFromEnvironment() {
	s.T().Setenv("RPG_BATTLE_LOG_LEVEL", "DEBUG")
	s.T().Setenv("RPG_BATTLE_REDIS_ADDR", "localhost:6379")
	s.T().Setenv("RPG_BATTLE_REPORT_TTL", "90m")
	s.T().Setenv("RPG_BATTLE_CATALOG_PATH", "/etc/rpg-battle/catalog.yaml")
	s.T().Setenv("RPG_BATTLE_SIM_WORKERS", "8")
	s.T().Setenv("RPG_BATTLE_MAX_ROUNDS", "0")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(slog.LevelDebug, cfg.Level())
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(90*time.Minute, cfg.ReportTTL)
	s.Equal("/etc/rpg-battle/catalog.yaml", cfg.CatalogPath)
	s.Equal(8, cfg.SimWorkers)
	s.Equal(0, cfg.MaxRounds)
}

func (s *ConfigTestSuite) TestParseError() {
	s.T().Setenv("RPG_BATTLE_SIM_WORKERS", "lots")

	_, err := config.Load()
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "parse env")
}

func (s *ConfigTestSuite) TestValidation() {
	testCases := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{name: "unknown level", key: "RPG_BATTLE_LOG_LEVEL", value: "loud", field: "LogLevel"},
		{name: "negative ttl", key: "RPG_BATTLE_REPORT_TTL", value: "-1h", field: "ReportTTL"},
		{name: "no workers", key: "RPG_BATTLE_SIM_WORKERS", value: "0", field: "SimWorkers"},
		{name: "negative rounds", key: "RPG_BATTLE_MAX_ROUNDS", value: "-5", field: "MaxRounds"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)

			_, err := config.Load()
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestParseLevel() {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: " Warn ", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}
	for _, tc := range testCases {
		got, err := config.ParseLevel(tc.in)
		s.Require().NoError(err, tc.in)
		s.Equal(tc.want, got, tc.in)
	}

	_, err := config.ParseLevel("trace")
	s.True(errors.IsInvalidArgument(err))
}
