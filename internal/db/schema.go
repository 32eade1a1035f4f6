package db

import (
	"context"

	"todo_webapp/internal/logger"
)

// CreateSchema creates the tasks table if it is absent.
func CreateSchema(ctx context.Context, p Provider, d Dialect) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, d.CreateTasksTable()); err != nil {
		return &StorageError{Op: "create tasks table", Err: err}
	}
	return nil
}

// EnsureSchema runs CreateSchema once at startup. Failures are logged and
// swallowed so the server still comes up; the result reports success.
// TODO: decide with product whether a failed bootstrap should abort startup.
func EnsureSchema(ctx context.Context, p Provider, d Dialect) bool {
	if err := CreateSchema(ctx, p, d); err != nil {
		logger.Error("error initializing database", "error", err)
		return false
	}
	logger.Info("database initialized", "dialect", d.Name)
	return true
}
