package tasksrepobridge_test

import (
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/taskflow/taskflow/bridge/repositories/tasksrepobridge"
	"github.com/taskflow/taskflow/core/repositories/tasksrepo"
	"github.com/taskflow/taskflow/sdk/validation"
)

func TestMarshalToBridgeDefaults(t *testing.T) {
	is := is.New(t)

	// A row with every nullable column null.
	task := tasksrepo.Task{
		ID:        "t1",
		Title:     "write report",
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	out := tasksrepobridge.MarshalToBridge(task)

	is.Equal(out.Priority, 1)               // absent priority renders as the default
	is.Equal(out.Status, 0)                 // absent status renders as todo
	is.Equal(out.Description, "")           // absent description renders empty
	is.Equal(out.DueDate, (*string)(nil))   // absent due date stays null
	is.Equal(out.CompletedAt, (*string)(nil))
	is.Equal(out.Tags, []string{}) // no tags is an empty sequence
}

func TestMarshalToBridgeTimestamps(t *testing.T) {
	is := is.New(t)

	due := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	done := time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC)
	status := tasksrepo.StatusDone
	task := tasksrepo.Task{
		ID:          "t1",
		Title:       "write report",
		DueDate:     &due,
		Status:      &status,
		CreatedAt:   time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		CompletedAt: &done,
	}

	out := tasksrepobridge.MarshalToBridge(task)

	is.Equal(*out.DueDate, "2026-03-02T17:00:00Z")
	is.Equal(out.CreatedAt, "2026-03-01T09:00:00Z")
	is.Equal(*out.CompletedAt, "2026-03-02T16:30:00Z")
	is.Equal(out.Status, tasksrepo.StatusDone)
}

func TestTagsRoundTrip(t *testing.T) {
	is := is.New(t)

	cases := [][]string{
		{},
		{"work"},
		{"work", "urgent", "q3"},
	}

	for _, tags := range cases {
		joined := tasksrepobridge.JoinTags(tags)
		split := tasksrepobridge.SplitTags(&joined)
		is.Equal(split, tags)
	}

	// Stored empty string is an empty sequence, never a single empty token.
	empty := ""
	is.Equal(tasksrepobridge.SplitTags(&empty), []string{})
	is.Equal(tasksrepobridge.SplitTags(nil), []string{})
}

func TestCreateInputRequiresTitleKey(t *testing.T) {
	is := is.New(t)

	err := tasksrepobridge.CreateTaskInput{}.Validate()
	is.True(err != nil) // missing title key is rejected

	emptyTitle := ""
	err = tasksrepobridge.CreateTaskInput{Title: &emptyTitle}.Validate()
	is.NoErr(err) // an empty title is present, and fine
}

func TestInputEnumValidation(t *testing.T) {
	is := is.New(t)

	title := "write report"
	badStatus := 3
	err := tasksrepobridge.CreateTaskInput{Title: &title, Status: &badStatus}.Validate()
	is.True(err != nil) // status outside 0..2 is rejected

	badPriority := 4
	err = tasksrepobridge.CreateTaskInput{Title: &title, Priority: &badPriority}.Validate()
	is.True(err != nil) // priority outside 0..3 is rejected

	negativePriority := -1
	err = tasksrepobridge.UpdateTaskInput{ID: "t1", Priority: &negativePriority}.Validate()
	is.True(err != nil)

	err = tasksrepobridge.UpdateTaskInput{Title: "x"}.Validate()
	is.True(err != nil) // update without an id is rejected
}

func TestMarshalCreateToRepositoryParsesFlexibleDates(t *testing.T) {
	is := is.New(t)

	title := "write report"

	for _, raw := range []string{
		"2026-03-02T17:00:00Z",
		"2026-03-02T17:00:00",
		"2026-03-02 17:00:00",
		"2026-03-02",
	} {
		input := tasksrepobridge.CreateTaskInput{Title: &title, DueDate: raw}
		out, err := tasksrepobridge.MarshalCreateToRepository(input)
		is.NoErr(err)
		is.True(out.DueDate != nil)
	}

	input := tasksrepobridge.CreateTaskInput{Title: &title, DueDate: "not a date"}
	_, err := tasksrepobridge.MarshalCreateToRepository(input)
	is.True(err != nil)

	input = tasksrepobridge.CreateTaskInput{Title: &title}
	out, err := tasksrepobridge.MarshalCreateToRepository(input)
	is.NoErr(err)
	is.Equal(out.DueDate, (*time.Time)(nil))
}

func TestFormatTimePtrNilStaysNil(t *testing.T) {
	is := is.New(t)

	is.Equal(validation.FormatTimePtr(nil), (*string)(nil))
}
