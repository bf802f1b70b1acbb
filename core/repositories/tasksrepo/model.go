package tasksrepo

import "time"

// Task status values. CompletedAt is non-nil exactly when the status is done.
const (
	StatusTodo  = 0
	StatusDoing = 1
	StatusDone  = 2
)

// Task is the stored shape of a task. Nullable columns stay pointers; the
// bridge layer substitutes the documented defaults when rendering.
type Task struct {
	ID          string     `db:"id"`
	UserID      *string    `db:"user_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	DueDate     *time.Time `db:"due_date"`
	Priority    *int       `db:"priority"`
	Status      *int       `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	CompletedAt *time.Time `db:"completed_at"`
	Tags        *string    `db:"tags"`
}

// CreateTask contains the fields for creating a new task. CreatedAt is
// assigned by the repository, never taken from the caller.
type CreateTask struct {
	UserID      *string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    int
	Status      int
	Tags        string
	CreatedAt   time.Time
}

// UpdateTask is a full replace of the mutable fields, not a partial patch.
// CompletedAt is recomputed by the repository from the incoming status.
type UpdateTask struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    int
	Status      int
	Tags        string
	CompletedAt *time.Time
}
