// Package notificationsrepo owns derived notifications: overdue-task alerts
// synthesized on every list, the welcome notification, and mark-as-read.
package notificationsrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/taskflow/taskflow/sdk/logger"
)

// Alert and welcome texts. The alert message doubles as the deduplication
// key: two alerts with the same message are never both stored for a user.
const (
	alertTitle    = "Tâche en retard ⚠️"
	alertMessagef = "Alerte : La tâche '%s' est en retard !"

	welcomeTitle    = "Bienvenue !"
	welcomeMessagef = "Bienvenue sur TaskFlow, %s ! Organisez vos tâches dès maintenant."
)

// Storer defines the data storage interface for notifications. OverdueTasks
// reads the tasks table; the deriver is the one place that crosses the two.
type Storer interface {
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	ExistsByUserAndMessage(ctx context.Context, userID, message string) (bool, error)
	Create(ctx context.Context, input CreateNotification) (Notification, error)
	MarkRead(ctx context.Context, id string) error
	OverdueTasks(ctx context.Context, userID string, now time.Time) ([]OverdueTask, error)
}

// Repository provides access to notification storage and derivation.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new notification repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// ListForUser derives overdue-task alerts and then returns the user's full
// notification list, newest first.
//
// The check-then-insert per task is not guarded by a transaction or unique
// constraint; concurrent list calls for the same user can each pass the
// duplicate check before either insert commits, so the dedup property is
// best-effort under racing requests.
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	if err := r.deriveOverdueAlerts(ctx, userID); err != nil {
		return nil, err
	}

	notifications, err := r.storer.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications for user %s: %w", userID, err)
	}
	return notifications, nil
}

// deriveOverdueAlerts inserts one unread alert per overdue task that has not
// been alerted yet. Tasks without a due date never show up here. An alert
// created for an old title stays as it was; a later rename does not retract
// or rewrite it, the message text at creation time is the key.
func (r *Repository) deriveOverdueAlerts(ctx context.Context, userID string) error {
	now := time.Now()

	overdue, err := r.storer.OverdueTasks(ctx, userID, now)
	if err != nil {
		return fmt.Errorf("scan overdue tasks for user %s: %w", userID, err)
	}

	for _, task := range overdue {
		message := fmt.Sprintf(alertMessagef, task.Title)

		exists, err := r.storer.ExistsByUserAndMessage(ctx, userID, message)
		if err != nil {
			return fmt.Errorf("check alert for task %s: %w", task.ID, err)
		}
		if exists {
			continue
		}

		input := CreateNotification{
			UserID:    userID,
			Title:     alertTitle,
			Message:   message,
			CreatedAt: now,
		}
		if _, err := r.storer.Create(ctx, input); err != nil {
			return fmt.Errorf("create alert for task %s: %w", task.ID, err)
		}

		r.log.InfoContext(ctx, "overdue alert created", "user_id", userID, "task_id", task.ID)
	}

	return nil
}

// CreateWelcome inserts the one-time welcome notification for a new user.
func (r *Repository) CreateWelcome(ctx context.Context, userID, username string) error {
	input := CreateNotification{
		UserID:    userID,
		Title:     welcomeTitle,
		Message:   fmt.Sprintf(welcomeMessagef, username),
		CreatedAt: time.Now(),
	}

	if _, err := r.storer.Create(ctx, input); err != nil {
		return fmt.Errorf("create welcome notification for user %s: %w", userID, err)
	}
	return nil
}

// MarkRead marks a notification as read. Marking twice is a success both
// times, and ownership is not checked here; authorization sits with the
// caller.
func (r *Repository) MarkRead(ctx context.Context, id string) error {
	if err := r.storer.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification %s read: %w", id, err)
	}
	return nil
}
