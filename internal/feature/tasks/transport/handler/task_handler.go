// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/transport/http/dto"
	"task_backend/internal/feature/tasks/usecase"
	jwtmw "task_backend/internal/platform/jwt"
)

// TaskUsecase defines the task operations the handler depends on. All of them
// are scoped to the authenticated user resolved by the auth middleware.
type TaskUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Task, error)
	Create(ctx context.Context, userID uint, in usecase.CreateTaskInput) (*entity.Task, error)
	Update(ctx context.Context, userID, taskID uint, in usecase.UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, userID, taskID uint) error
	AddSubtask(ctx context.Context, userID, taskID uint, title string) (*entity.Task, error)
	UpdateSubtask(ctx context.Context, userID, taskID, subtaskID uint, in usecase.UpdateSubtaskInput) (*entity.Task, error)
	DeleteSubtask(ctx context.Context, userID, taskID, subtaskID uint) (*entity.Task, error)
}

// TaskHandler handles HTTP requests for task and subtask operations.
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler creates a new TaskHandler instance.
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// callerID reads the authenticated user ID the middleware stored on the
// context. The second result is false when the middleware did not run.
func callerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(jwtmw.ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// pathID parses one numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// writeTaskError maps domain errors to HTTP responses.
func writeTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyTitle),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	case errors.Is(err, usecase.ErrSubtaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
	default:
		slog.Error("task operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// List returns the caller's full task set with subtasks.
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	tasks, err := h.tasks.List(c.Request.Context(), userID)
	if err != nil {
		writeTaskError(c, err)
		return
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		DueTime:     req.DueTime,
		Priority:    req.Priority,
		Category:    req.Category,
	}
	for _, s := range req.Subtasks {
		in.SubtaskTitles = append(in.SubtaskTitles, s.Title)
	}
	task, err := h.tasks.Create(c.Request.Context(), userID, in)
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update handles PUT /api/tasks/:id with a partial attribute set.
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := h.tasks.Update(c.Request.Context(), userID, taskID, usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		DueTime:     req.DueTime,
		Priority:    req.Priority,
		Category:    req.Category,
		Completed:   req.Completed,
	})
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id. Subtasks go with the task.
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err := h.tasks.Delete(c.Request.Context(), userID, taskID); err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

// AddSubtask handles POST /api/tasks/:id/subtasks and returns the updated
// parent task.
func (h *TaskHandler) AddSubtask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	var req dto.AddSubtaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := h.tasks.AddSubtask(c.Request.Context(), userID, taskID, req.Title)
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateSubtask handles PUT /api/tasks/:id/subtasks/:subtaskId and returns
// the updated parent task.
func (h *TaskHandler) UpdateSubtask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	subtaskID, ok := pathID(c, "subtaskId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
		return
	}
	var req dto.UpdateSubtaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := h.tasks.UpdateSubtask(c.Request.Context(), userID, taskID, subtaskID, usecase.UpdateSubtaskInput{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteSubtask handles DELETE /api/tasks/:id/subtasks/:subtaskId and returns
// the updated parent task.
func (h *TaskHandler) DeleteSubtask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	subtaskID, ok := pathID(c, "subtaskId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
		return
	}
	task, err := h.tasks.DeleteSubtask(c.Request.Context(), userID, taskID, subtaskID)
	if err != nil {
		writeTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
