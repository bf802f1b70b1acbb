// Package taskspgxstore implements the tasksrepo.Storer against postgres.
package taskspgxstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taskflow/taskflow/core/repositories/tasksrepo"
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

// List retrieves all tasks in store order.
func (s *Store) List(ctx context.Context) ([]tasksrepo.Task, error) {
	query := `SELECT id, user_id, title, description, due_date, priority, status, created_at, completed_at, tags FROM tasks`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}

// Create inserts a new task.
func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	id, err := cryptids.GenerateID()
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("generate id: %w", err)
	}

	query := `INSERT INTO tasks (id, user_id, title, description, due_date, priority, status, created_at, completed_at, tags)
		VALUES (@id, @user_id, @title, @description, @due_date, @priority, @status, @created_at, NULL, @tags)
		RETURNING id, user_id, title, description, due_date, priority, status, created_at, completed_at, tags`

	args := pgx.NamedArgs{
		"id":          id,
		"user_id":     input.UserID,
		"title":       input.Title,
		"description": input.Description,
		"due_date":    input.DueDate,
		"priority":    input.Priority,
		"status":      input.Status,
		"created_at":  input.CreatedAt,
		"tags":        input.Tags,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Update replaces the mutable fields. A missing id affects zero rows and is
// not an error.
func (s *Store) Update(ctx context.Context, id string, input tasksrepo.UpdateTask) error {
	query := `UPDATE tasks SET
		title = @title,
		description = @description,
		due_date = @due_date,
		priority = @priority,
		status = @status,
		completed_at = @completed_at,
		tags = @tags
		WHERE id = @id`

	args := pgx.NamedArgs{
		"id":           id,
		"title":        input.Title,
		"description":  input.Description,
		"due_date":     input.DueDate,
		"priority":     input.Priority,
		"status":       input.Status,
		"completed_at": input.CompletedAt,
		"tags":         input.Tags,
	}

	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	return nil
}

// Delete removes a task. A missing id affects zero rows and is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	return nil
}
