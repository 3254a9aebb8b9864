package services

import (
	"context"
	"fmt"
	"time"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

// TaskNotFoundError reports that no live task has the given ID. It is
// returned by every ID-addressed operation, whether the ID never
// existed or the task was already deleted.
type TaskNotFoundError struct {
	ID string
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %s not found", e.ID)
}

// ValidationError reports caller-supplied input that violates a
// domain rule. The message is the failure payload; the delivery layer
// decides how to present it.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

type TaskService interface {
	// CreateTask validates and stores a new task. The title is
	// trimmed and must not end up empty; the description is trimmed
	// and an empty result means absent. The task starts in
	// StatusTodo with CreatedAt == UpdatedAt.
	//
	// It returns a ValidationError if the trimmed title is empty;
	// the store is not touched in that case.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// GetTaskByID returns the task with the given ID or a
	// TaskNotFoundError.
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)

	// ListTasks returns all tasks ordered by creation time, oldest
	// first, ties broken by ID. A non-nil filter restricts the
	// result to tasks with that status.
	ListTasks(ctx context.Context, filter *models.Status) ([]*models.Task, error)

	// UpdateTask merges the supplied fields into an existing task
	// and bumps UpdatedAt. Nil fields keep their current value.
	//
	// It returns a TaskNotFoundError if the ID has no live task and
	// a ValidationError if a supplied title trims to empty; the
	// store is left untouched on any failure.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// DeleteTask removes the task with the given ID or returns a
	// TaskNotFoundError without mutating the store.
	DeleteTask(ctx context.Context, id string) error

	// DeleteCompletedBefore removes every task with StatusDone whose
	// UpdatedAt is strictly before the threshold and returns how
	// many were removed. An empty match is a success with count 0.
	DeleteCompletedBefore(ctx context.Context, threshold time.Time) (int, error)
}

type CreateTaskParams struct {
	Title       string
	Description string
}

type UpdateTaskParams struct {
	ID          string
	Title       *string
	Description *string
	Status      *models.Status
}
