package tasksrepobridge

import (
	"fmt"

	"github.com/taskflow/taskflow/core/repositories/tasksrepo"
)

// Task is the canonical external shape. Absent timestamps render as JSON
// null, never as an empty string; enumerated fields are always integers.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     *string  `json:"dueDate"`
	Priority    int      `json:"priority"`
	Status      int      `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	CompletedAt *string  `json:"completedAt"`
	Tags        []string `json:"tags"`
}

// CreateTaskInput requires the title key to be present; an empty string is
// fine. Other fields take the documented defaults when absent.
type CreateTaskInput struct {
	Title       *string  `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    *int     `json:"priority"`
	Status      *int     `json:"status"`
	Tags        []string `json:"tags"`
	UserID      string   `json:"userId"`
}

func (c CreateTaskInput) Validate() error {
	if c.Title == nil {
		return fmt.Errorf("title is required")
	}
	if err := validateStatus(c.Status); err != nil {
		return err
	}
	return validatePriority(c.Priority)
}

// UpdateTaskInput is the full mutable field set; this is a replace, not a
// patch.
type UpdateTaskInput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    *int     `json:"priority"`
	Status      *int     `json:"status"`
	Tags        []string `json:"tags"`
}

func (u UpdateTaskInput) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("id is required")
	}
	if err := validateStatus(u.Status); err != nil {
		return err
	}
	return validatePriority(u.Priority)
}

func validateStatus(status *int) error {
	if status == nil {
		return nil
	}
	switch *status {
	case tasksrepo.StatusTodo, tasksrepo.StatusDoing, tasksrepo.StatusDone:
		return nil
	}
	return fmt.Errorf("status must be one of 0 (todo), 1 (doing), 2 (done), got %d", *status)
}

func validatePriority(priority *int) error {
	if priority == nil {
		return nil
	}
	if *priority < 0 || *priority > 3 {
		return fmt.Errorf("priority must be between 0 and 3, got %d", *priority)
	}
	return nil
}
