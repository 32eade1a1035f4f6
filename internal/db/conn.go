package db

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Conn is a single live handle to the Storage Backend. Callers must Close it.
// *sql.Conn satisfies it.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	PingContext(ctx context.Context) error
	Close() error
}

// Provider hands out connections. The repository only depends on this.
type Provider interface {
	Acquire(ctx context.Context) (Conn, error)
}

// Opener makes one connection attempt.
type Opener func(ctx context.Context) (Conn, error)

// DirectOpener opens a brand new single-connection handle on every call.
// Closing the returned Conn tears the whole handle down.
func DirectOpener(d Dialect, dsn string) Opener {
	return func(ctx context.Context) (Conn, error) {
		sqlDB, err := sql.Open(d.DriverName, dsn)
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)

		conn, err := sqlDB.Conn(ctx)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		if err := conn.PingContext(ctx); err != nil {
			_ = conn.Close()
			_ = sqlDB.Close()
			return nil, err
		}
		return &ownedConn{Conn: conn, db: sqlDB}, nil
	}
}

type ownedConn struct {
	*sql.Conn
	db *sql.DB
}

func (c *ownedConn) Close() error {
	return errors.Join(c.Conn.Close(), c.db.Close())
}

// Pool keeps a long-lived *sql.DB and lends out its connections.
type Pool struct {
	db *sql.DB
}

func NewPool(d Dialect, dsn string) (*Pool, error) {
	sqlDB, err := sql.Open(d.DriverName, dsn)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	return &Pool{db: sqlDB}, nil
}

// Open borrows a pooled connection; Close on it returns it to the pool.
func (p *Pool) Open(ctx context.Context) (Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func (p *Pool) Close() error { return p.db.Close() }
