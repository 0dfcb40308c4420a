package domain

import (
	"context"
	"time"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

// Valid task statuses.
const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// ParseTaskStatus validates a wire value against the task status enumeration.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return TaskStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// Task is a unit of work attached to an event. The event strongly owns its
// tasks (deleting the event removes them); the assignee is a weak reference.
// swagger:model Task
type Task struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	AssigneeID  string     `json:"assignee_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskUpdate carries the optional fields of a partial task update.
// Nil fields retain their prior values.
type TaskUpdate struct {
	Name        *string
	Description *string
	Status      *string
	AssigneeID  *string
	DueDate     *time.Time
}

// TaskRepository defines storage operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id string) (*Task, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Task, error)
	Update(ctx context.Context, id string, status *TaskStatus, upd TaskUpdate) (*Task, error)
	Delete(ctx context.Context, id string) error
}

// TaskService defines the business logic for tasks.
type TaskService interface {
	CreateTask(ctx context.Context, eventID string, task *Task) (*Task, error)
	GetTask(ctx context.Context, taskID string) (*Task, error)
	ListTasksByEvent(ctx context.Context, eventID string) ([]*Task, error)
	UpdateTask(ctx context.Context, taskID string, upd TaskUpdate) (*Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}
