package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Store fallback modes used when DATABASE_URL is not set.
const (
	FallbackMemory = "memory"
	FallbackNone   = "none"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"GO_ENV,default=development"`
	Port        string `env:"PORT,default=8080" validate:"required"`
	AppName     string `env:"APP_NAME,default=aaharsevax"`
	AppVersion  string `env:"APP_VERSION,default=1.0.0"`

	DBUrl            string        `env:"DATABASE_URL"`
	RunMigrations    bool          `env:"RUN_MIGRATIONS,default=true"`
	DBMaxOpenConns   int           `env:"DB_MAX_OPEN_CONNS,default=5" validate:"gte=1"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT,default=10s" validate:"gte=0"`
	DBIdleTimeout    time.Duration `env:"DB_IDLE_TIMEOUT,default=10s" validate:"gte=0"`

	// StoreFallback selects the store used when DBUrl is empty.
	StoreFallback   string `env:"STORE_FALLBACK,default=memory" validate:"oneof=memory none"`
	TrackFoodTotals bool   `env:"TRACK_FOOD_TOTALS,default=true"`

	// RateLimitRPS limits requests per client IP; 0 disables. Clients are keyed
	// by the socket address, so behind a proxy every client shares one bucket.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS,default=0" validate:"gte=0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST,default=20" validate:"gte=1"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`
}

// IsProduction reports whether GO_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase reports whether a durable store is configured.
func (c *Config) HasDatabase() bool {
	return c.DBUrl != ""
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
