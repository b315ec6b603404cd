package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dominions-mapgen/internal/config"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
)

var configKeys = []string{
	"HTTP_PORT", "GRPC_PORT", "LOG_LEVEL", "LOG_ENCODING", "CATALOG_BACKEND", "SQLITE_PATH",
	"REDIS_ADDR", "REDIS_CLUSTER_ADDRS", "TEMPLATE_DIR", "TEMPLATE_BASE", "CORS_ALLOWED_ORIGINS",
}

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	// t.Setenv restores the previous value; Unsetenv keeps host settings out of the test
	for _, key := range configKeys {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal(8080, cfg.HTTPPort)
	s.Equal(50051, cfg.GRPCPort)
	s.Equal("info", cfg.LogLevel)
	s.Equal(config.BackendSQLite, cfg.CatalogBackend)
	s.Equal("catalog.db", cfg.SQLitePath)
	s.Equal("Arena", cfg.TemplateBase)
	s.Empty(cfg.TemplateDir)
	s.Nil(cfg.AllowedOrigins())
}

func (s *ConfigTestSuite) TestEnvFile() {
	envFile := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(envFile, []byte(
		"CATALOG_BACKEND=redis\nREDIS_CLUSTER_ADDRS=10.0.0.1:6379,10.0.0.2:6379\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\nHTTP_PORT=9000\n",
	), 0o600))
	s.T().Setenv("HTTP_PORT", "9100")

	cfg, err := config.Load(envFile)
	s.Require().NoError(err)

	s.Equal(config.BackendRedis, cfg.CatalogBackend)
	s.Equal([]string{"10.0.0.1:6379", "10.0.0.2:6379"}, cfg.RedisClusterAddrs)
	s.Equal([]string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
	s.Equal(9100, cfg.HTTPPort, "environment wins over the env file")
}

func (s *ConfigTestSuite) TestMissingEnvFileIsIgnored() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.NoError(err)
}

func (s *ConfigTestSuite) TestInvalid() {
	testCases := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{name: "unknown backend", env: map[string]string{"CATALOG_BACKEND": "postgres"}, field: "CATALOG_BACKEND"},
		{name: "same ports", env: map[string]string{"HTTP_PORT": "7000", "GRPC_PORT": "7000"}, field: "GRPC_PORT"},
		{name: "port out of range", env: map[string]string{"HTTP_PORT": "70000"}, field: "HTTP_PORT"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			for k, v := range tc.env {
				s.T().Setenv(k, v)
			}

			_, err := config.Load("")
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(errors.GetFieldErrors(err), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestUnparsablePort() {
	s.T().Setenv("GRPC_PORT", "grpc")

	_, err := config.Load("")
	s.True(errors.IsInvalidArgument(err))
}
