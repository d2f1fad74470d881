package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds the application configuration.
type Config struct {
	ServerPort      int           `env:"PORT,default=8080"`
	DatabasePath    string        `env:"DATABASE_PATH,default=./social.db"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	LogFormat       string        `env:"LOG_FORMAT,default=console"`
	AllowedOrigins  string        `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`

	// Message cache; disabled when RedisAddr is empty.
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB,default=0"`
	MessageCacheTTL time.Duration `env:"MESSAGE_CACHE_TTL,default=1m"`

	EventRetention     time.Duration `env:"EVENT_RETENTION,default=720h"`
	EventPruneSchedule string        `env:"EVENT_PRUNE_SCHEDULE,default=0 3 * * *"`

	// Per-client limit on /register and /login; 0 (the default) disables it.
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT,default=0"`
	AuthRateBurst int     `env:"AUTH_RATE_BURST,default=10"`
}

// Load loads configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Origins splits the comma separated CORS origin list.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// RateLimitEnabled reports whether auth endpoints are throttled.
func (c *Config) RateLimitEnabled() bool {
	return c.AuthRateLimit > 0
}

// CacheEnabled reports whether a Redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func (c *Config) validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid PORT %d", c.ServerPort)
	}
	if c.DatabasePath == "" {
		return errors.New("DATABASE_PATH must not be empty")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: want console or json", c.LogFormat)
	}
	if c.EventRetention <= 0 {
		return fmt.Errorf("invalid EVENT_RETENTION %s", c.EventRetention)
	}
	if c.AuthRateLimit < 0 || (c.AuthRateLimit > 0 && c.AuthRateBurst <= 0) {
		return fmt.Errorf("invalid AUTH_RATE_LIMIT %v / AUTH_RATE_BURST %d", c.AuthRateLimit, c.AuthRateBurst)
	}
	if _, err := cron.ParseStandard(c.EventPruneSchedule); err != nil {
		return fmt.Errorf("invalid EVENT_PRUNE_SCHEDULE: %w", err)
	}
	return nil
}
