package sessionsrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/taskflow/taskflow/core/repositories/sessionsrepo"
	"github.com/taskflow/taskflow/sdk/logger"
)

type stubStorer struct {
	listCalls   int
	lastTaskID  string
	lastCreate  sessionsrepo.StartSession
	lastUpdated sessionsrepo.UpdateSession
	endID       string
	endTime     time.Time
	endStatus   int
	endCalls    int
	err         error
}

func (s *stubStorer) ListByTask(ctx context.Context, taskID string) ([]sessionsrepo.Session, error) {
	s.listCalls++
	s.lastTaskID = taskID
	return []sessionsrepo.Session{}, s.err
}

func (s *stubStorer) Create(ctx context.Context, input sessionsrepo.StartSession) (sessionsrepo.Session, error) {
	s.lastCreate = input
	if s.err != nil {
		return sessionsrepo.Session{}, s.err
	}
	status := input.Status
	return sessionsrepo.Session{
		ID:        "s1",
		TaskID:    input.TaskID,
		StartTime: input.StartTime,
		Status:    &status,
	}, nil
}

func (s *stubStorer) UpdateFields(ctx context.Context, id string, input sessionsrepo.UpdateSession) error {
	s.lastUpdated = input
	return s.err
}

func (s *stubStorer) End(ctx context.Context, id string, endTime time.Time, status int) error {
	s.endCalls++
	s.endID = id
	s.endTime = endTime
	s.endStatus = status
	return s.err
}

func newRepo(storer *stubStorer) *sessionsrepo.Repository {
	return sessionsrepo.NewRepository(logger.NewDefault(), storer)
}

func TestListByTaskEmptyIDShortCircuits(t *testing.T) {
	storer := &stubStorer{}
	repo := newRepo(storer)

	sessions, err := repo.ListByTask(context.Background(), "")
	if err != nil {
		t.Fatalf("ListByTask failed: %v", err)
	}
	if sessions == nil || len(sessions) != 0 {
		t.Errorf("Expected empty list, got %v", sessions)
	}
	if storer.listCalls != 0 {
		t.Error("Expected the store not to be queried for an empty task id")
	}
}

func TestStartAssignsStartTimeOnly(t *testing.T) {
	storer := &stubStorer{}
	repo := newRepo(storer)

	before := time.Now()
	session, err := repo.Start(context.Background(), sessionsrepo.StartSession{
		TaskID: "t1",
		Status: sessionsrepo.StatusPlanned,
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if session.StartTime.Before(before) {
		t.Errorf("Expected StartTime assigned at start, got %v", session.StartTime)
	}
	// Starting a session does not promote it to running.
	if storer.lastCreate.Status != sessionsrepo.StatusPlanned {
		t.Errorf("Expected status %d untouched, got %d", sessionsrepo.StatusPlanned, storer.lastCreate.Status)
	}
}

func TestEndForcesFinished(t *testing.T) {
	storer := &stubStorer{}
	repo := newRepo(storer)

	if err := repo.End(context.Background(), "s1"); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	if storer.endID != "s1" {
		t.Errorf("Expected end for 's1', got '%s'", storer.endID)
	}
	if storer.endStatus != sessionsrepo.StatusFinished {
		t.Errorf("Expected status forced to %d, got %d", sessionsrepo.StatusFinished, storer.endStatus)
	}
	if storer.endTime.IsZero() {
		t.Error("Expected an end time to be assigned")
	}
}

func TestEndTwiceMovesEndTimeForward(t *testing.T) {
	storer := &stubStorer{}
	repo := newRepo(storer)

	if err := repo.End(context.Background(), "s1"); err != nil {
		t.Fatalf("first End failed: %v", err)
	}
	first := storer.endTime

	time.Sleep(5 * time.Millisecond)

	if err := repo.End(context.Background(), "s1"); err != nil {
		t.Fatalf("second End failed: %v", err)
	}

	if !storer.endTime.After(first) {
		t.Errorf("Expected second end time %v after first %v", storer.endTime, first)
	}
	if storer.endStatus != sessionsrepo.StatusFinished {
		t.Errorf("Expected status to stay %d, got %d", sessionsrepo.StatusFinished, storer.endStatus)
	}
}

func TestUpdateNeverTouchesTimes(t *testing.T) {
	storer := &stubStorer{}
	repo := newRepo(storer)

	err := repo.Update(context.Background(), "s1", sessionsrepo.UpdateSession{
		DurationMinutes: 50,
		Type:            sessionsrepo.TypeLongBreak,
		Status:          sessionsrepo.StatusRunning,
		Notes:           "second wind",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if storer.endCalls != 0 {
		t.Error("Expected a field update to never end the session")
	}
	if storer.lastUpdated.DurationMinutes != 50 {
		t.Errorf("Expected duration 50, got %d", storer.lastUpdated.DurationMinutes)
	}
}
