package sessionsrepo

import "time"

// Session status values. EndTime is only ever set together with finished.
const (
	StatusPlanned  = 0
	StatusRunning  = 1
	StatusFinished = 2
)

// Session type values.
const (
	TypeWork       = 0
	TypeShortBreak = 1
	TypeLongBreak  = 2
)

// DefaultDurationMinutes is the pomodoro length applied when a caller does
// not supply one.
const DefaultDurationMinutes = 25

// Session is the stored shape of a timed work interval against a task.
type Session struct {
	ID              string     `db:"id"`
	TaskID          string     `db:"task_id"`
	StartTime       time.Time  `db:"start_time"`
	EndTime         *time.Time `db:"end_time"`
	DurationMinutes *int       `db:"duration_minutes"`
	Type            *int       `db:"type"`
	Status          *int       `db:"status"`
	Notes           *string    `db:"notes"`
}

// StartSession contains the fields for starting a new session. StartTime is
// assigned by the repository.
type StartSession struct {
	TaskID          string
	DurationMinutes int
	Type            int
	Status          int
	Notes           string
	StartTime       time.Time
}

// UpdateSession replaces the non-time fields of a session. The start and end
// times are never touched by a field update.
type UpdateSession struct {
	DurationMinutes int
	Type            int
	Status          int
	Notes           string
}
