package handlers

import (
	"net/http"

	"todo_webapp/internal/logger"

	"github.com/gin-gonic/gin"
)

// Index renders every task, newest first.
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	tasks, err := h.Tasks.List(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to load tasks", "error", err)
		c.String(http.StatusInternalServerError, "Error loading tasks: %v", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"tasks": tasks})
}

// AddTask stores the "task" form field, if any, and goes back to the list.
func (h *Handler) AddTask(c *gin.Context) {
	description := c.PostForm("task")
	if description != "" {
		ctx := c.Request.Context()
		if err := h.Tasks.Insert(ctx, description); err != nil {
			logger.WithContext(ctx).Error("failed to add task", "error", err)
			c.String(http.StatusInternalServerError, "Error adding task: %v", err)
			return
		}
		TasksCreated.Inc()
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := parseTaskID(c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	ctx := c.Request.Context()
	if err := h.Tasks.Delete(ctx, id); err != nil {
		logger.WithContext(ctx).Error("failed to delete task", "task_id", id, "error", err)
		c.String(http.StatusInternalServerError, "Error deleting task: %v", err)
		return
	}
	TasksDeleted.Inc()
	c.Redirect(http.StatusFound, "/")
}
