package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	LogDebug   bool `env:"LOG_DEBUG" envDefault:"false"`

	HTTPAddress    string   `env:"HTTP_ADDRESS" envDefault:"0.0.0.0:9090"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required,notEmpty"`
	RedisURL      string `env:"REDIS_URL,required,notEmpty"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required,notEmpty"`

	RabbitmqSchedulesExchange   string `env:"RABBITMQ_SCHEDULES_EXCHANGE" envDefault:"schedules"`
	RabbitmqSchedulesRoutingKey string `env:"RABBITMQ_SCHEDULES_ROUTING_KEY" envDefault:"schedule.created"`
	RabbitmqSchedulesQueue      string `env:"RABBITMQ_SCHEDULES_QUEUE" envDefault:"schedule-created-events"`

	ParseRateLimitPerMinute  uint16        `env:"PARSE_RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	CreateRateLimitPerMinute uint16        `env:"CREATE_RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	ParseCacheTTL            time.Duration `env:"PARSE_CACHE_TTL" envDefault:"24h"`
	MaxQueryLength           int           `env:"MAX_QUERY_LENGTH" envDefault:"256"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.MaxQueryLength <= 0 {
		return nil, fmt.Errorf("MAX_QUERY_LENGTH must be positive, got %d", cfg.MaxQueryLength)
	}
	if cfg.ParseRateLimitPerMinute == 0 {
		return nil, fmt.Errorf("PARSE_RATE_LIMIT_PER_MINUTE must be positive")
	}
	return cfg, nil
}
