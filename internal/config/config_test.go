package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jaroslavtyc/drd-plus-person/internal/config"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) unsetenv(keys ...string) {
	for _, key := range keys {
		// Setenv restores the previous value after the test
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	s.unsetenv("DRDPLUS_LOG_LEVEL", "DRDPLUS_TABLES_FILE", "DRDPLUS_FATE")

	cfg, err := config.Load()
	s.Require().NoError(err)
	s.Assert().Equal("info", cfg.LogLevel)
	s.Assert().Empty(cfg.TablesFile)
	s.Assert().Equal(properties.FateOfCombinationOfPropertiesAndBackground, cfg.Fate)
	s.Assert().Equal(slog.LevelInfo, cfg.Level())
}

func (s *ConfigTestSuite) TestFromEnv() {
	s.T().Setenv("DRDPLUS_LOG_LEVEL", "DEBUG")
	s.T().Setenv("DRDPLUS_TABLES_FILE", "/etc/drdplus/tables.yaml")
	s.T().Setenv("DRDPLUS_FATE", "good_background")

	cfg, err := config.Load()
	s.Require().NoError(err)
	s.Assert().Equal(slog.LevelDebug, cfg.Level())
	s.Assert().Equal("/etc/drdplus/tables.yaml", cfg.TablesFile)
	s.Assert().Equal(properties.FateOfGoodBackground, cfg.Fate)
}

func (s *ConfigTestSuite) TestInvalid() {
	testCases := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{"unknown log level", "DRDPLUS_LOG_LEVEL", "verbose", "LogLevel"},
		{"unknown fate", "DRDPLUS_FATE", "destiny", "Fate"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv("DRDPLUS_LOG_LEVEL", "info")
			s.T().Setenv("DRDPLUS_FATE", "good_background")
			s.T().Setenv(tc.key, tc.value)

			cfg, err := config.Load()
			s.Assert().Nil(cfg)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.field)
		})
	}
}
