package notificationsrepo

import "time"

// Notification is the stored shape of a derived or system notification.
type Notification struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
	IsRead    *bool     `db:"is_read"`
}

// CreateNotification contains the fields for inserting a notification.
// Notifications are synthesized by the system, never user-authored.
type CreateNotification struct {
	UserID    string
	Title     string
	Message   string
	CreatedAt time.Time
}

// OverdueTask is the slice of a task the deriver needs to build an alert.
type OverdueTask struct {
	ID    string `db:"id"`
	Title string `db:"title"`
}
