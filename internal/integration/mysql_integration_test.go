package integration

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"todo_webapp/internal/config"
	"todo_webapp/internal/db"

	"github.com/stretchr/testify/require"
)

// Runs only when MYSQL_TEST_HOST points at a disposable MySQL server.
func TestEndToEndMySQL(t *testing.T) {
	host := os.Getenv("MYSQL_TEST_HOST")
	if host == "" {
		t.Skip("MYSQL_TEST_HOST not set; skipping integration test")
	}
	port := 3306
	if v := os.Getenv("MYSQL_TEST_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}
	user := os.Getenv("MYSQL_TEST_USER")
	if user == "" {
		user = "root"
	}
	name := os.Getenv("MYSQL_TEST_DB")
	if name == "" {
		name = "todo_test"
	}

	cfg := config.DatabaseConfig{
		Driver:          "mysql",
		Host:            host,
		Port:            port,
		User:            user,
		Password:        os.Getenv("MYSQL_TEST_PASSWORD"),
		Name:            name,
		ConnectAttempts: 5,
		ConnectBackoff:  time.Second,
	}

	// start from an empty table
	conns, err := db.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, db.CreateSchema(context.Background(), conns, conns.Dialect()))
	conn, err := conns.Acquire(context.Background())
	require.NoError(t, err)
	_, err = conn.ExecContext(context.Background(), "DELETE FROM tasks")
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	runScenario(t, startServer(t, cfg))
}
