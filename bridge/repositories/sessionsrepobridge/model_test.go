package sessionsrepobridge_test

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/taskflow/taskflow/bridge/repositories/sessionsrepobridge"
	"github.com/taskflow/taskflow/core/repositories/sessionsrepo"
)

// End and field update share one endpoint; the dispatch key is the presence
// of endTime in the payload, not its value.
func TestUpdateInputEndTimeKeyDispatch(t *testing.T) {
	is := is.New(t)

	cases := []struct {
		name  string
		body  string
		isEnd bool
	}{
		{"no endTime key", `{"id":"s1","status":1}`, false},
		{"endTime null", `{"id":"s1","endTime":null}`, true},
		{"endTime value", `{"id":"s1","endTime":"2026-03-02T17:00:00Z"}`, true},
		{"endTime empty string", `{"id":"s1","endTime":""}`, true},
	}

	for _, tc := range cases {
		var input sessionsrepobridge.UpdateSessionInput
		err := json.Unmarshal([]byte(tc.body), &input)
		is.NoErr(err)
		if input.IsEnd() != tc.isEnd {
			t.Errorf("%s: expected IsEnd %v, got %v", tc.name, tc.isEnd, input.IsEnd())
		}
	}
}

func TestStartInputValidation(t *testing.T) {
	is := is.New(t)

	err := sessionsrepobridge.StartSessionInput{}.Validate()
	is.True(err != nil) // missing taskId is rejected

	err = sessionsrepobridge.StartSessionInput{TaskID: "t1"}.Validate()
	is.NoErr(err)

	badType := 3
	err = sessionsrepobridge.StartSessionInput{TaskID: "t1", Type: &badType}.Validate()
	is.True(err != nil)

	badStatus := -1
	err = sessionsrepobridge.StartSessionInput{TaskID: "t1", Status: &badStatus}.Validate()
	is.True(err != nil)
}

func TestMarshalStartDefaults(t *testing.T) {
	is := is.New(t)

	out := sessionsrepobridge.MarshalStartToRepository(sessionsrepobridge.StartSessionInput{TaskID: "t1"})

	is.Equal(out.DurationMinutes, sessionsrepo.DefaultDurationMinutes)
	is.Equal(out.Type, sessionsrepo.TypeWork)
	is.Equal(out.Status, sessionsrepo.StatusPlanned) // not forced to running
	is.Equal(out.Notes, "")
}

func TestMarshalToBridgeOpenSession(t *testing.T) {
	is := is.New(t)

	session := sessionsrepo.Session{ID: "s1", TaskID: "t1"}
	out := sessionsrepobridge.MarshalToBridge(session)

	is.Equal(out.EndTime, (*string)(nil)) // open session renders endTime null
	is.Equal(out.DurationMinutes, sessionsrepo.DefaultDurationMinutes)
}
