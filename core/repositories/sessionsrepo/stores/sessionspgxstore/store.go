// Package sessionspgxstore implements the sessionsrepo.Storer against
// postgres.
package sessionspgxstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taskflow/taskflow/core/repositories/sessionsrepo"
	"github.com/taskflow/taskflow/infrastructure/postgresdb"
	"github.com/taskflow/taskflow/sdk/cryptids"
	"github.com/taskflow/taskflow/sdk/logger"
)

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// ListByTask retrieves the sessions recorded against a task.
func (s *Store) ListByTask(ctx context.Context, taskID string) ([]sessionsrepo.Session, error) {
	query := `SELECT id, task_id, start_time, end_time, duration_minutes, type, status, notes FROM sessions WHERE task_id = @task_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[sessionsrepo.Session])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}

// Create inserts a new session.
func (s *Store) Create(ctx context.Context, input sessionsrepo.StartSession) (sessionsrepo.Session, error) {
	id, err := cryptids.GenerateID()
	if err != nil {
		return sessionsrepo.Session{}, fmt.Errorf("generate id: %w", err)
	}

	query := `INSERT INTO sessions (id, task_id, start_time, end_time, duration_minutes, type, status, notes)
		VALUES (@id, @task_id, @start_time, NULL, @duration_minutes, @type, @status, @notes)
		RETURNING id, task_id, start_time, end_time, duration_minutes, type, status, notes`

	args := pgx.NamedArgs{
		"id":               id,
		"task_id":          input.TaskID,
		"start_time":       input.StartTime,
		"duration_minutes": input.DurationMinutes,
		"type":             input.Type,
		"status":           input.Status,
		"notes":            input.Notes,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return sessionsrepo.Session{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[sessionsrepo.Session])
	if err != nil {
		return sessionsrepo.Session{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// UpdateFields replaces duration, type, status and notes. A missing id
// affects zero rows and is not an error.
func (s *Store) UpdateFields(ctx context.Context, id string, input sessionsrepo.UpdateSession) error {
	query := `UPDATE sessions SET
		duration_minutes = @duration_minutes,
		type = @type,
		status = @status,
		notes = @notes
		WHERE id = @id`

	args := pgx.NamedArgs{
		"id":               id,
		"duration_minutes": input.DurationMinutes,
		"type":             input.Type,
		"status":           input.Status,
		"notes":            input.Notes,
	}

	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	return nil
}

// End sets the end time and status, leaving everything else alone.
func (s *Store) End(ctx context.Context, id string, endTime time.Time, status int) error {
	query := `UPDATE sessions SET end_time = @end_time, status = @status WHERE id = @id`

	args := pgx.NamedArgs{
		"id":       id,
		"end_time": endTime,
		"status":   status,
	}

	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	return nil
}
