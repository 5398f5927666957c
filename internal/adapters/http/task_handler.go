package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/babicastilho/todo-list-api/internal/infrastructure/logger"
	"github.com/babicastilho/todo-list-api/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks returns all tasks owned by the authenticated user, each with a
// freshly computed overdue flag.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	ownerID := ownerIDFromContext(c)

	tasks, err := h.taskService.List(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Errorw("List tasks failed", "error", err, "owner_id", ownerID)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, TasksResponse{Success: true, Tasks: tasks})
}

// GetTask returns a single task.
func (h *TaskHandler) GetTask(c echo.Context) error {
	ownerID := ownerIDFromContext(c)

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "task not found"})
	}

	task, err := h.taskService.Get(c.Request().Context(), ownerID, taskID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, TaskResponse{Success: true, Task: task})
}

// CreateTask creates a task for the authenticated user.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	ownerID := ownerIDFromContext(c)

	var input ports.TaskInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request format"})
	}

	task, err := h.taskService.Create(c.Request().Context(), ownerID, input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, TaskResponse{Success: true, Task: task})
}

// UpdateTask replaces the full task record. Optional fields missing from the
// payload are cleared, not preserved.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	ownerID := ownerIDFromContext(c)

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "task not found"})
	}

	var input ports.TaskInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request format"})
	}

	task, err := h.taskService.Update(c.Request().Context(), ownerID, taskID, input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, TaskResponse{Success: true, Task: task})
}

// DeleteTask removes a task. Repeating the call for an already-deleted id
// yields 404.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	ownerID := ownerIDFromContext(c)

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "task not found"})
	}

	if err := h.taskService.Delete(c.Request().Context(), ownerID, taskID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
