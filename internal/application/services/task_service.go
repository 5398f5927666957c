package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/babicastilho/todo-list-api/internal/domain/entities"
	"github.com/babicastilho/todo-list-api/internal/infrastructure/logger"
	"github.com/babicastilho/todo-list-api/internal/ports"
)

// TaskService handles owner-scoped task operations: input validation, due
// instant composition and derived overdue status. Ownership enforcement
// itself lives in the repository queries; the service never issues an
// unscoped call.
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
	now      func() time.Time
	loc      *time.Location
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
		now:      time.Now,
		loc:      time.Local,
	}
}

// List returns all tasks owned by ownerID with a freshly computed overdue
// flag. The flag is never persisted, so two calls may disagree for the same
// record as the clock moves past its due instant.
func (s *TaskService) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, task := range tasks {
		task.Overdue = task.IsOverdue(now)
	}

	return tasks, nil
}

// Get retrieves a single task owned by ownerID.
func (s *TaskService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	task.Overdue = task.IsOverdue(s.now())
	return task, nil
}

// Create validates the input, composes the due fields and persists a new
// task owned by ownerID.
func (s *TaskService) Create(ctx context.Context, ownerID uuid.UUID, input ports.TaskInput) (*entities.Task, error) {
	task, err := s.buildTask(input)
	if err != nil {
		return nil, err
	}
	task.OwnerID = ownerID

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Infow("Task created", "task_id", task.ID, "owner_id", ownerID, "title", task.Title)

	task.Overdue = task.IsOverdue(s.now())
	return task, nil
}

// Update replaces the full record. Optional fields absent from the input are
// cleared, not preserved. The repository matches id and owner in the UPDATE
// itself, so a task owned by someone else surfaces as ErrTaskNotFound.
func (s *TaskService) Update(ctx context.Context, ownerID, id uuid.UUID, input ports.TaskInput) (*entities.Task, error) {
	task, err := s.buildTask(input)
	if err != nil {
		return nil, err
	}
	task.ID = id
	task.OwnerID = ownerID

	if err := s.taskRepo.Replace(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Infow("Task updated", "task_id", id, "owner_id", ownerID)

	task.Overdue = task.IsOverdue(s.now())
	return task, nil
}

// Delete removes the task. Deleting an already-deleted or foreign id yields
// ErrTaskNotFound.
func (s *TaskService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.logger.Infow("Task deleted", "task_id", id, "owner_id", ownerID)
	return nil
}

// buildTask validates the input eagerly, before any persistence call, and
// maps it onto an entity. Validation order: required fields, priority,
// temporal fields.
func (s *TaskService) buildTask(input ports.TaskInput) (*entities.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, entities.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(input.Resume) == "" {
		return nil, entities.NewValidationError("resume", "resume is required")
	}

	priority := entities.DefaultPriority
	if input.Priority != "" {
		priority = entities.Priority(input.Priority)
		if !priority.IsValid() {
			return nil, entities.NewValidationError("priority", "priority must be one of: highest, high, medium, low, lowest")
		}
	}

	var categoryID *uuid.UUID
	if input.CategoryID != nil && *input.CategoryID != "" {
		id, err := uuid.Parse(*input.CategoryID)
		if err != nil {
			return nil, entities.NewValidationError("categoryId", "categoryId must be a valid id")
		}
		categoryID = &id
	}

	if input.DueTime != "" && input.DueDate == "" {
		return nil, entities.NewValidationError("dueDate", "due date is required when a time is set")
	}

	// Both layouts are re-formatted after parsing so only canonical values
	// reach the store. time.Parse accepts a single-digit hour ("9:30"), and
	// a non-canonical value would not survive the fixed-width columns.
	var dueDate, dueTime *string
	if input.DueDate != "" {
		parsed, err := time.ParseInLocation(entities.DueDateLayout, input.DueDate, s.loc)
		if err != nil {
			return nil, entities.NewValidationError("dueDate", "due date must be formatted YYYY-MM-DD")
		}
		canonical := parsed.Format(entities.DueDateLayout)
		dueDate = &canonical

		if input.DueTime != "" {
			parsed, err := time.Parse(entities.DueTimeLayout, input.DueTime)
			if err != nil {
				return nil, entities.NewValidationError("dueTime", "due time must be formatted HH:MM")
			}
			canonical := parsed.Format(entities.DueTimeLayout)
			dueTime = &canonical
		}
	}

	return &entities.Task{
		Title:       input.Title,
		Resume:      input.Resume,
		Description: input.Description,
		CategoryID:  categoryID,
		Priority:    priority,
		DueDate:     dueDate,
		DueTime:     dueTime,
	}, nil
}
