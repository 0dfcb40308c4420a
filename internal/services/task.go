package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventease/internal/domain"
)

type taskService struct {
	taskRepo       domain.TaskRepository
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

// NewTaskService creates a TaskService with the given repositories.
func NewTaskService(
	taskRepo domain.TaskRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	timeout time.Duration,
) domain.TaskService {
	return &taskService{
		taskRepo:       taskRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

func (s *taskService) CreateTask(ctx context.Context, eventID string, task *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if task.Name == "" {
		return nil, fmt.Errorf("task name is required")
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	// Assignee is a weak reference, but it must exist when provided.
	if task.AssigneeID != "" {
		if _, err := s.userRepo.GetByID(ctx, task.AssigneeID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrUserNotFound
			}
			return nil, fmt.Errorf("get assignee: %w", err)
		}
	}

	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	} else if _, err := domain.ParseTaskStatus(string(task.Status)); err != nil {
		return nil, err
	}

	task.EventID = eventID
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (s *taskService) ListTasksByEvent(ctx context.Context, eventID string) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	tasks, err := s.taskRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (s *taskService) UpdateTask(ctx context.Context, taskID string, upd domain.TaskUpdate) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var status *domain.TaskStatus
	if upd.Status != nil {
		parsed, err := domain.ParseTaskStatus(*upd.Status)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}
	if upd.AssigneeID != nil && *upd.AssigneeID != "" {
		if _, err := s.userRepo.GetByID(ctx, *upd.AssigneeID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrUserNotFound
			}
			return nil, fmt.Errorf("get assignee: %w", err)
		}
	}

	task, err := s.taskRepo.Update(ctx, taskID, status, upd)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, taskID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
