package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port       uint16 `env:"PORT" envDefault:"9090"`
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	RateLimitValue  uint32        `env:"RATE_LIMIT" envDefault:"10"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"10s"`

	SentryDSN string `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if !cfg.IsTestMode && cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL must be set")
	}
	if cfg.RateLimitValue == 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive")
	}
	if cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return cfg, nil
}
