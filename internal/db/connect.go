package db

import (
	"fmt"
	"net"
	"strconv"

	"todo_webapp/internal/config"
	"todo_webapp/internal/logger"

	"github.com/go-sql-driver/mysql"
)

// Connect builds the connection manager described by cfg. It does not dial;
// the first Acquire does.
func Connect(cfg config.DatabaseConfig) (*Manager, error) {
	d, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	policy := RetryPolicy{MaxAttempts: cfg.ConnectAttempts, Backoff: cfg.ConnectBackoff}

	if !cfg.Pooled {
		logger.Info("database configured", "driver", d.Name, "target", describe(cfg), "pooled", false)
		return NewManager(DirectOpener(d, dsn), d, policy), nil
	}

	pool, err := NewPool(d, dsn)
	if err != nil {
		return nil, err
	}
	m := NewManager(pool.Open, d, policy)
	m.release = pool.Close
	logger.Info("database configured", "driver", d.Name, "target", describe(cfg), "pooled", true)
	return m, nil
}

// DSN renders the driver data source name. DATABASE_URL wins when set.
func DSN(cfg config.DatabaseConfig) (string, error) {
	if cfg.URL != "" {
		return cfg.URL, nil
	}
	switch cfg.Driver {
	case "mysql":
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		mc.DBName = cfg.Name
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	case "sqlite":
		return cfg.SQLitePath, nil
	default:
		return "", fmt.Errorf("driver %q needs DATABASE_URL", cfg.Driver)
	}
}

// never includes credentials
func describe(cfg config.DatabaseConfig) string {
	switch {
	case cfg.Driver == "sqlite" && cfg.URL == "":
		return cfg.SQLitePath
	case cfg.URL != "":
		return "DATABASE_URL"
	default:
		return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)) + "/" + cfg.Name
	}
}
