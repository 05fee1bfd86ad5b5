package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/simpletodo/api/internal/domain/entities"
	"github.com/simpletodo/api/internal/infrastructure/logger"
	"github.com/simpletodo/api/internal/ports"
)

// TaskService handles task operations scoped to the authenticated owner
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// ListTasks returns every task owned by the caller, in insertion order
func (s *TaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	return s.taskRepo.ListByOwner(ctx, ownerID)
}

// CreateTask persists a new task with owner = caller
func (s *TaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	priority := req.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, entities.ErrInvalidPriority
	}

	task := &entities.Task{
		Text:        req.Text,
		Description: req.Description,
		Completed:   false,
		Priority:    priority,
		UserID:      ownerID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.WithUserID(ownerID.String()).Info("Task created", "task_id", task.ID)

	return task, nil
}

// UpdateTask applies only the fields present in the request. The lookup is
// filtered by owner, so a task belonging to another user reports not found.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID uuid.UUID, taskID int, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.GetByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		task.Text = *req.Text
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, entities.ErrInvalidPriority
		}
		task.Priority = *req.Priority
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.WithUserID(ownerID.String()).Info("Task updated", "task_id", task.ID)

	return task, nil
}

// DeleteTask removes the task under the same owner-filtered lookup contract
func (s *TaskService) DeleteTask(ctx context.Context, ownerID uuid.UUID, taskID int) error {
	if err := s.taskRepo.DeleteByIDAndOwner(ctx, taskID, ownerID); err != nil {
		return err
	}

	s.logger.WithUserID(ownerID.String()).Info("Task deleted", "task_id", taskID)

	return nil
}
