package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/simpletodo/api/internal/infrastructure/logger"
	"github.com/simpletodo/api/internal/ports"
)

// TaskHandler handles task CRUD requests for the authenticated caller
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

// ListTasks returns all tasks owned by the caller
func (h *TaskHandler) ListTasks(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	tasks, err := h.taskService.ListTasks(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Error("List tasks failed", "error", err, "user_id", ownerID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, TasksResponse{Tasks: tasks})
}

// CreateTask validates the payload and persists a new task with
// owner = caller
func (h *TaskHandler) CreateTask(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return NewError(http.StatusBadRequest, KindValidation, "invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), ownerID, req)
	if err != nil {
		h.logger.Error("Create task failed", "error", err, "user_id", ownerID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, TaskResponse{Message: "Task created", Task: task})
}

// UpdateTask applies a partial update to one of the caller's tasks
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewError(http.StatusBadRequest, KindValidation, "invalid task id")
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return NewError(http.StatusBadRequest, KindValidation, "invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), ownerID, taskID, req)
	if err != nil {
		h.logger.Warn("Update task failed", "error", err, "task_id", taskID, "user_id", ownerID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, TaskResponse{Message: "Task updated", Task: task})
}

// DeleteTask removes one of the caller's tasks
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewError(http.StatusBadRequest, KindValidation, "invalid task id")
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), ownerID, taskID); err != nil {
		h.logger.Warn("Delete task failed", "error", err, "task_id", taskID, "user_id", ownerID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted"})
}
