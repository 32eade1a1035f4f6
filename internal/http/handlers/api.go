package handlers

import (
	"net/http"

	"todo_webapp/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	tasks, err := h.Tasks.List(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to list tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// CreateTask accepts {"task": "..."} or a form body. An empty task is
// accepted and ignored, like the form route.
func (h *Handler) CreateTask(c *gin.Context) {
	var req struct {
		Task string `json:"task" form:"task"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if req.Task == "" {
		c.JSON(http.StatusOK, gin.H{"ok": true, "created": false})
		return
	}

	ctx := c.Request.Context()
	if err := h.Tasks.Insert(ctx, req.Task); err != nil {
		logger.WithContext(ctx).Error("failed to create task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	TasksCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"ok": true, "created": true})
}

func (h *Handler) RemoveTask(c *gin.Context) {
	id, ok := parseTaskID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx := c.Request.Context()
	if err := h.Tasks.Delete(ctx, id); err != nil {
		logger.WithContext(ctx).Error("failed to delete task", "task_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	TasksDeleted.Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
