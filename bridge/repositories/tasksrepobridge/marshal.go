package tasksrepobridge

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskflow/taskflow/core/repositories/tasksrepo"
	"github.com/taskflow/taskflow/sdk/validation"
)

// MarshalToBridge converts a stored task row to its canonical external form.
func MarshalToBridge(task tasksrepo.Task) Task {
	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: validation.GetStringOrEmpty(task.Description),
		DueDate:     validation.FormatTimePtr(task.DueDate),
		Priority:    validation.GetIntOrDefault(task.Priority, 1),
		Status:      validation.GetIntOrDefault(task.Status, tasksrepo.StatusTodo),
		CreatedAt:   validation.FormatTime(task.CreatedAt),
		CompletedAt: validation.FormatTimePtr(task.CompletedAt),
		Tags:        SplitTags(task.Tags),
	}
}

// MarshalListToBridge converts a list of stored rows to bridge models.
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts bridge create input to repository input,
// applying the documented defaults for absent fields.
func MarshalCreateToRepository(input CreateTaskInput) (tasksrepo.CreateTask, error) {
	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return tasksrepo.CreateTask{}, err
	}

	return tasksrepo.CreateTask{
		UserID:      validation.StringPtrIfNotEmpty(input.UserID),
		Title:       *input.Title,
		Description: input.Description,
		DueDate:     dueDate,
		Priority:    validation.GetIntOrDefault(input.Priority, 1),
		Status:      validation.GetIntOrDefault(input.Status, tasksrepo.StatusTodo),
		Tags:        JoinTags(input.Tags),
	}, nil
}

// MarshalUpdateToRepository converts bridge update input to repository input.
func MarshalUpdateToRepository(input UpdateTaskInput) (tasksrepo.UpdateTask, error) {
	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return tasksrepo.UpdateTask{}, err
	}

	return tasksrepo.UpdateTask{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     dueDate,
		Priority:    validation.GetIntOrDefault(input.Priority, 1),
		Status:      validation.GetIntOrDefault(input.Status, tasksrepo.StatusTodo),
		Tags:        JoinTags(input.Tags),
	}, nil
}

// SplitTags turns the stored comma-joined string into an ordered sequence.
// An empty stored string is an empty sequence, not a single empty token.
func SplitTags(tags *string) []string {
	if tags == nil || *tags == "" {
		return []string{}
	}
	return strings.Split(*tags, ",")
}

// JoinTags turns an ordered sequence into the stored comma-joined string.
// An empty sequence stores as the empty string.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := validation.ParseFlexibleDate(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid dueDate: %s", raw)
	}
	return &t, nil
}
