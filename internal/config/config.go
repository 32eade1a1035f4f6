package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppHost string `validate:"required"`
	AppPort string `validate:"required,numeric"`

	LogLevel string `validate:"oneof=debug info warn warning error"`
	LogJSON  bool

	Database DatabaseConfig

	// Rate limiting of mutating routes, 0 disables it
	RateLimit       int `validate:"gte=0"`
	RateLimitWindow time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int `validate:"gte=0"`
}

// DatabaseConfig describes how the Storage Backend is reached.
// URL, when set, is used verbatim as the driver DSN.
type DatabaseConfig struct {
	Driver     string `validate:"oneof=mysql postgres sqlite"`
	Host       string `validate:"required_if=Driver mysql"`
	Port       int    `validate:"gt=0,lt=65536"`
	User       string
	Password   string
	Name       string `validate:"required_if=Driver mysql"`
	URL        string `validate:"required_if=Driver postgres"`
	SQLitePath string `validate:"required_if=Driver sqlite"`
	Pooled     bool

	ConnectAttempts int           `validate:"gte=1"`
	ConnectBackoff  time.Duration `validate:"gte=0"`
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.AppHost, c.AppPort)
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppHost:  envOr("APP_HOST", "0.0.0.0"),
		AppPort:  envOr("APP_PORT", "5000"),
		LogLevel: strings.ToLower(envOr("LOG_LEVEL", "info")),
		LogJSON:  os.Getenv("LOG_JSON") == "true",

		Database: DatabaseConfig{
			Driver:     strings.ToLower(envOr("DB_DRIVER", "mysql")),
			Host:       envOr("MYSQL_HOST", "localhost"),
			Port:       envInt("MYSQL_PORT", 3306),
			User:       envOr("MYSQL_USER", "root"),
			Password:   os.Getenv("MYSQL_PASSWORD"),
			Name:       envOr("MYSQL_DB", "todo_db"),
			URL:        os.Getenv("DATABASE_URL"),
			SQLitePath: envOr("SQLITE_PATH", "todo.db"),
			Pooled:     os.Getenv("DB_POOLED") == "true",

			ConnectAttempts: envInt("DB_CONNECT_ATTEMPTS", 5),
			ConnectBackoff:  5 * time.Second,
		},

		RateLimit:       envInt("RATE_LIMIT", 0),
		RateLimitWindow: time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         envInt("REDIS_DB", 0),
	}

	if v := os.Getenv("DB_CONNECT_BACKOFF"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("DB_CONNECT_BACKOFF: %w", err)
		}
		cfg.Database.ConnectBackoff = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// malformed numbers fall back to the default
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
