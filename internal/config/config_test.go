package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_HOST", "APP_PORT", "LOG_LEVEL", "LOG_JSON",
	"DB_DRIVER", "MYSQL_HOST", "MYSQL_PORT", "MYSQL_USER", "MYSQL_PASSWORD", "MYSQL_DB",
	"DATABASE_URL", "SQLITE_PATH", "DB_POOLED", "DB_CONNECT_ATTEMPTS", "DB_CONNECT_BACKOFF",
	"RATE_LIMIT", "RATE_LIMIT_WINDOW_SECONDS", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)

	db := cfg.Database
	assert.Equal(t, "mysql", db.Driver)
	assert.Equal(t, "localhost", db.Host)
	assert.Equal(t, 3306, db.Port)
	assert.Equal(t, "root", db.User)
	assert.Equal(t, "", db.Password)
	assert.Equal(t, "todo_db", db.Name)
	assert.False(t, db.Pooled)
	assert.Equal(t, 5, db.ConnectAttempts)
	assert.Equal(t, 5*time.Second, db.ConnectBackoff)

	assert.Equal(t, 0, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_USER", "todo")
	t.Setenv("MYSQL_PASSWORD", "s3cret")
	t.Setenv("MYSQL_DB", "tasks")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("DB_CONNECT_ATTEMPTS", "3")
	t.Setenv("DB_CONNECT_BACKOFF", "250ms")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DB_POOLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "todo", cfg.Database.User)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "tasks", cfg.Database.Name)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 3, cfg.Database.ConnectAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.ConnectBackoff)
	assert.True(t, cfg.Database.Pooled)
	assert.Equal(t, "0.0.0.0:8081", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMalformedNumberKeepsDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYSQL_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoadRejectsBadBackoff(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_CONNECT_BACKOFF", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_CONNECT_BACKOFF")
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "oracle"}},
		{"postgres without url", map[string]string{"DB_DRIVER": "postgres"}},
		{"zero attempts", map[string]string{"DB_CONNECT_ATTEMPTS": "0"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"non numeric port", map[string]string{"APP_PORT": "http"}},
		{"negative rate limit", map[string]string{"RATE_LIMIT": "-1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadSQLiteAndPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.Database.SQLitePath)

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/todo")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/todo", cfg.Database.URL)
}
