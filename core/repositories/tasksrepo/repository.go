// Package tasksrepo owns the task lifecycle: creation defaults, the
// completion timestamp invariant, and deletion.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskflow/taskflow/sdk/logger"
)

var ErrTaskNotFound = errors.New("task not found")

// Storer defines the data storage interface for tasks.
type Storer interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, input CreateTask) (Task, error)
	Update(ctx context.Context, id string, input UpdateTask) error
	Delete(ctx context.Context, id string) error
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new task repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns all tasks in store-defined order.
func (r *Repository) List(ctx context.Context) ([]Task, error) {
	tasks, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create inserts a new task. The creation time is set here and the
// completion time always starts null, whatever status the caller sent.
func (r *Repository) Create(ctx context.Context, input CreateTask) (Task, error) {
	input.CreatedAt = time.Now()

	task, err := r.storer.Create(ctx, input)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	r.log.InfoContext(ctx, "task created", "id", task.ID)
	return task, nil
}

// Update replaces the mutable fields of a task. The completion time is
// derived from the incoming status alone: resubmitting done refreshes it to
// the current time. Intentional, callers are expected to avoid redundant
// done resubmission.
func (r *Repository) Update(ctx context.Context, id string, input UpdateTask) error {
	if input.Status == StatusDone {
		now := time.Now()
		input.CompletedAt = &now
	} else {
		input.CompletedAt = nil
	}

	if err := r.storer.Update(ctx, id, input); err != nil {
		return fmt.Errorf("update task %s: %w", id, err)
	}
	return nil
}

// Delete removes a task by id. Deleting an id that does not exist is a
// success: callers cannot distinguish deleted from never-there. Sessions
// referencing the task are left in place.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}
