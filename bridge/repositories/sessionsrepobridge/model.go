package sessionsrepobridge

import (
	"encoding/json"
	"fmt"

	"github.com/taskflow/taskflow/core/repositories/sessionsrepo"
)

// Session is the canonical external shape. An open session renders endTime
// as JSON null.
type Session struct {
	ID              string  `json:"id"`
	TaskID          string  `json:"taskId"`
	StartTime       string  `json:"startTime"`
	EndTime         *string `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Type            int     `json:"type"`
	Status          int     `json:"status"`
	Notes           string  `json:"notes"`
}

// StartSessionInput creates a session against a task. Absent fields take the
// documented defaults; starting does not force the status to running.
type StartSessionInput struct {
	TaskID          string  `json:"taskId"`
	DurationMinutes *int    `json:"durationMinutes"`
	Type            *int    `json:"type"`
	Status          *int    `json:"status"`
	Notes           *string `json:"notes"`
}

func (s StartSessionInput) Validate() error {
	if s.TaskID == "" {
		return fmt.Errorf("taskId is required")
	}
	if err := validateType(s.Type); err != nil {
		return err
	}
	return validateStatus(s.Status)
}

// UpdateSessionInput carries either an end request or a field update. The
// two are selected solely by the presence of the endTime key: when the key
// is there, whatever its value, this is an end request and every other field
// is ignored. EndTime is a RawMessage so that an explicit null still counts
// as present.
type UpdateSessionInput struct {
	ID              string          `json:"id"`
	EndTime         json.RawMessage `json:"endTime"`
	DurationMinutes *int            `json:"durationMinutes"`
	Type            *int            `json:"type"`
	Status          *int            `json:"status"`
	Notes           *string         `json:"notes"`
}

// IsEnd reports whether the payload carried the endTime key.
func (u UpdateSessionInput) IsEnd() bool {
	return u.EndTime != nil
}

func (u UpdateSessionInput) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("id is required")
	}
	if u.IsEnd() {
		return nil
	}
	if err := validateType(u.Type); err != nil {
		return err
	}
	return validateStatus(u.Status)
}

func validateType(sessionType *int) error {
	if sessionType == nil {
		return nil
	}
	switch *sessionType {
	case sessionsrepo.TypeWork, sessionsrepo.TypeShortBreak, sessionsrepo.TypeLongBreak:
		return nil
	}
	return fmt.Errorf("type must be one of 0 (work), 1 (short break), 2 (long break), got %d", *sessionType)
}

func validateStatus(status *int) error {
	if status == nil {
		return nil
	}
	switch *status {
	case sessionsrepo.StatusPlanned, sessionsrepo.StatusRunning, sessionsrepo.StatusFinished:
		return nil
	}
	return fmt.Errorf("status must be one of 0 (planned), 1 (running), 2 (finished), got %d", *status)
}
