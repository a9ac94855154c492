package configs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config defines all environment variables and derived config for the cache probe.
type Config struct {
	// Transformed time.Duration fields (not loaded from env directly)
	ProbeIntervalDuration time.Duration `env:"-"` // Probe interval (duration)

	AppName  string `env:"APP_NAME,required,notEmpty" validate:"required"` // Namespace prefix for every cache key
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	CacheRedisEndpoint   string `env:"CACHE_REDIS_ENDPOINT,required,notEmpty" validate:"required,hostname_port"`
	CacheRedisPassword   string `env:"CACHE_REDIS_PASSWORD"`
	CacheRedisDB         int    `env:"CACHE_REDIS_DB" envDefault:"0" validate:"gte=0,lte=15"`
	CacheRedisMaxRetries int    `env:"CACHE_REDIS_MAX_RETRIES" envDefault:"10" validate:"gte=0"`

	ProbeInterval int    `env:"PROBE_INTERVAL" envDefault:"30"`
	ProbeKey      string `env:"PROBE_KEY" envDefault:"probe" validate:"required"`
	ProbeTTL      int64  `env:"PROBE_TTL" envDefault:"60" validate:"gt=0"`
	ProbeTTLUnit  string `env:"PROBE_TTL_UNIT" envDefault:"s"`
}

// Parse loads configuration from environment variables, validates and normalizes it.
func Parse() (*Config, error) {
	var cfg Config

	// 1. parse env
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	// 2. validate
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 3. derived fields
	cfg.normalize()

	return &cfg, nil
}

// validate performs all required configuration checks.
func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.ProbeInterval <= 0 {
		return errors.New("PROBE_INTERVAL must be greater than 0")
	}

	switch strings.ToLower(c.ProbeTTLUnit) {
	case "h", "m", "s", "ms":
	default:
		return errors.New("PROBE_TTL_UNIT must be one of h/m/s/ms")
	}

	return nil
}

// normalize converts int values to duration and sets derived fields.
func (c *Config) normalize() {
	c.ProbeIntervalDuration = time.Duration(c.ProbeInterval) * time.Second
	c.ProbeTTLUnit = strings.ToLower(c.ProbeTTLUnit)
}
