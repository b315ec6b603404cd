// Package config loads service settings from the environment
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
)

// Catalog backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config is the full service configuration
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`
	GRPCPort int `envconfig:"GRPC_PORT" default:"50051"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	CatalogBackend    string   `envconfig:"CATALOG_BACKEND" default:"sqlite"`
	SQLitePath        string   `envconfig:"SQLITE_PATH" default:"catalog.db"`
	RedisAddr         string   `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisClusterAddrs []string `envconfig:"REDIS_CLUSTER_ADDRS"`

	// TemplateDir overrides the built in map templates when set
	TemplateDir  string `envconfig:"TEMPLATE_DIR"`
	TemplateBase string `envconfig:"TEMPLATE_BASE" default:"Arena"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS"`
}

// Load reads envFile when it exists, then the environment. Variables already
// set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("failed to read %s", envFile))
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to check %s", envFile)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to process environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges and backend specific settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		vb.Field("HTTP_PORT", "must be a valid port")
	}
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Field("GRPC_PORT", "must be a valid port")
	}
	if c.HTTPPort == c.GRPCPort {
		vb.Field("GRPC_PORT", "must differ from HTTP_PORT")
	}

	errors.ValidateEnum("CATALOG_BACKEND", c.CatalogBackend, []string{BackendSQLite, BackendRedis}, vb)
	switch c.CatalogBackend {
	case BackendSQLite:
		errors.ValidateRequired("SQLITE_PATH", c.SQLitePath, vb)
	case BackendRedis:
		if c.RedisAddr == "" && len(c.RedisClusterAddrs) == 0 {
			vb.Field("REDIS_ADDR", "REDIS_ADDR or REDIS_CLUSTER_ADDRS is required")
		}
	}

	errors.ValidateRequired("TEMPLATE_BASE", c.TemplateBase, vb)

	return vb.Build()
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas
func (c *Config) AllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	var origins []string
	for _, origin := range strings.Split(c.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
