package repository

import (
	"context"

	"todo_webapp/internal/db"
	"todo_webapp/internal/domain"
)

// TaskRepository runs each operation as one auto-committed statement on a
// connection of its own.
type TaskRepository struct {
	conns   db.Provider
	dialect db.Dialect
}

func NewTaskRepository(conns db.Provider, dialect db.Dialect) *TaskRepository {
	return &TaskRepository{conns: conns, dialect: dialect}
}

// List returns every task, newest first. Ties on created_at fall back to
// the higher id first.
func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	conn, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `SELECT id, task, created_at FROM tasks ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, &db.StorageError{Op: "list tasks", Err: err}
	}
	defer rows.Close()

	res, err := scanTasks(rows)
	if err != nil {
		return nil, &db.StorageError{Op: "list tasks", Err: err}
	}
	return res, nil
}

// Insert stores a new task. An empty description is ignored.
func (r *TaskRepository) Insert(ctx context.Context, description string) error {
	if description == "" {
		return nil
	}

	conn, err := r.conns.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, r.dialect.Rebind(`INSERT INTO tasks (task) VALUES (?)`), description); err != nil {
		return &db.StorageError{Op: "insert task", Err: err}
	}
	return nil
}

// Delete removes the task with id. A missing id is not an error.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.conns.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM tasks WHERE id = ?`), id); err != nil {
		return &db.StorageError{Op: "delete task", Err: err}
	}
	return nil
}
