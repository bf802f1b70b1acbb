// Package notificationspgxstore implements the notificationsrepo.Storer
// against postgres.
package notificationspgxstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taskflow/taskflow/core/repositories/notificationsrepo"
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

// ListByUser retrieves a user's notifications, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]notificationsrepo.Notification, error) {
	query := `SELECT id, user_id, title, message, created_at, is_read FROM notifications WHERE user_id = @user_id ORDER BY created_at DESC`

	args := pgx.NamedArgs{
		"user_id": userID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[notificationsrepo.Notification])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}

// ExistsByUserAndMessage reports whether a notification with this exact
// message already exists for the user.
func (s *Store) ExistsByUserAndMessage(ctx context.Context, userID, message string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM notifications WHERE user_id = @user_id AND message = @message)`

	args := pgx.NamedArgs{
		"user_id": userID,
		"message": message,
	}

	var exists bool
	if err := s.pool.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		return false, postgresdb.HandlePgError(err)
	}

	return exists, nil
}

// Create inserts a new unread notification.
func (s *Store) Create(ctx context.Context, input notificationsrepo.CreateNotification) (notificationsrepo.Notification, error) {
	id, err := cryptids.GenerateID()
	if err != nil {
		return notificationsrepo.Notification{}, fmt.Errorf("generate id: %w", err)
	}

	query := `INSERT INTO notifications (id, user_id, title, message, created_at, is_read)
		VALUES (@id, @user_id, @title, @message, @created_at, FALSE)
		RETURNING id, user_id, title, message, created_at, is_read`

	args := pgx.NamedArgs{
		"id":         id,
		"user_id":    input.UserID,
		"title":      input.Title,
		"message":    input.Message,
		"created_at": input.CreatedAt,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return notificationsrepo.Notification{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[notificationsrepo.Notification])
	if err != nil {
		return notificationsrepo.Notification{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// MarkRead sets is_read. A missing id affects zero rows and is not an error.
func (s *Store) MarkRead(ctx context.Context, id string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	return nil
}

// OverdueTasks retrieves the user's not-done tasks whose due date has
// passed. Tasks with no due date never match.
func (s *Store) OverdueTasks(ctx context.Context, userID string, now time.Time) ([]notificationsrepo.OverdueTask, error) {
	query := `SELECT id, title FROM tasks WHERE user_id = @user_id AND status != @done AND due_date < @now`

	args := pgx.NamedArgs{
		"user_id": userID,
		"done":    tasksrepo.StatusDone,
		"now":     now,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[notificationsrepo.OverdueTask])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
