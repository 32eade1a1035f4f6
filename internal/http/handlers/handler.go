package handlers

import (
	"context"
	"strconv"

	"todo_webapp/internal/domain"
)

// TaskStore is the data access the handlers need; *repository.TaskRepository
// implements it.
type TaskStore interface {
	List(ctx context.Context) ([]*domain.Task, error)
	Insert(ctx context.Context, description string) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Tasks TaskStore
}

func NewHandler(tasks TaskStore) *Handler {
	return &Handler{Tasks: tasks}
}

// parseTaskID accepts unsigned decimal ids only, like the route converter
// of the page routes always did.
func parseTaskID(s string) (int64, bool) {
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, false
	}
	return int64(n), true
}
