// Package sessionsrepo owns the session lifecycle: start defaults, the
// end/field update split, and the end-time invariant.
package sessionsrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskflow/taskflow/sdk/logger"
)

var ErrSessionNotFound = errors.New("session not found")

// Storer defines the data storage interface for sessions.
type Storer interface {
	ListByTask(ctx context.Context, taskID string) ([]Session, error)
	Create(ctx context.Context, input StartSession) (Session, error)
	UpdateFields(ctx context.Context, id string, input UpdateSession) error
	End(ctx context.Context, id string, endTime time.Time, status int) error
}

// Repository provides access to session storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new session repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// ListByTask returns the sessions recorded against a task. An empty task id
// yields an empty list, not an error.
func (r *Repository) ListByTask(ctx context.Context, taskID string) ([]Session, error) {
	if taskID == "" {
		return []Session{}, nil
	}

	sessions, err := r.storer.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list sessions for task %s: %w", taskID, err)
	}
	return sessions, nil
}

// Start creates a session against a task. The start time is set here, the
// end time starts null, and the status is whatever the caller chose: starting
// does not force running.
func (r *Repository) Start(ctx context.Context, input StartSession) (Session, error) {
	input.StartTime = time.Now()

	session, err := r.storer.Create(ctx, input)
	if err != nil {
		return Session{}, fmt.Errorf("start session: %w", err)
	}

	r.log.InfoContext(ctx, "session started", "id", session.ID, "task_id", session.TaskID)
	return session, nil
}

// End closes a session: the end time becomes now and the status is forced to
// finished. Ending an already finished session moves the end time forward
// again; the status stays finished.
func (r *Repository) End(ctx context.Context, id string) error {
	if err := r.storer.End(ctx, id, time.Now(), StatusFinished); err != nil {
		return fmt.Errorf("end session %s: %w", id, err)
	}
	return nil
}

// Update replaces duration, type, status and notes. Time fields are left
// untouched.
func (r *Repository) Update(ctx context.Context, id string, input UpdateSession) error {
	if err := r.storer.UpdateFields(ctx, id, input); err != nil {
		return fmt.Errorf("update session %s: %w", id, err)
	}
	return nil
}
