package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds all environment backed configuration for the service.
type Config struct {
	// HTTP Server
	HTTPPort    int `env:"HTTP_PORT" envDefault:"8000"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9091"`

	// PostgreSQL
	DatabaseURL   string        `env:"DATABASE_URL,notEmpty"`
	DBMaxIdle     int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBMaxOpen     int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
	AutoMigrate   bool          `env:"AUTO_MIGRATE" envDefault:"true"`

	// Auth
	JWTSecret           string        `env:"JWT_SECRET,notEmpty"`
	AccessTokenLifetime time.Duration `env:"ACCESS_TOKEN_LIFETIME" envDefault:"1h"`

	// OpenRouter / completion API
	OpenRouterBaseURL string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	OpenRouterKey     string `env:"OPENROUTER_KEY"`
	CompletionModel   string `env:"COMPLETION_MODEL" envDefault:"nex-agi/deepseek-v3.1-nex-n1:free"`

	// Mock mode
	MockLatency time.Duration `env:"MOCK_LATENCY" envDefault:"1500ms"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`
}

// Load parses environment variables into Config and validates them.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if _, err := url.ParseRequestURI(cfg.OpenRouterBaseURL); err != nil {
		return nil, fmt.Errorf("invalid OPENROUTER_BASE_URL: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
