package sessionsrepobridge

import (
	"github.com/taskflow/taskflow/core/repositories/sessionsrepo"
	"github.com/taskflow/taskflow/sdk/validation"
)

// MarshalToBridge converts a stored session row to its canonical external
// form.
func MarshalToBridge(session sessionsrepo.Session) Session {
	return Session{
		ID:              session.ID,
		TaskID:          session.TaskID,
		StartTime:       validation.FormatTime(session.StartTime),
		EndTime:         validation.FormatTimePtr(session.EndTime),
		DurationMinutes: validation.GetIntOrDefault(session.DurationMinutes, sessionsrepo.DefaultDurationMinutes),
		Type:            validation.GetIntOrDefault(session.Type, sessionsrepo.TypeWork),
		Status:          validation.GetIntOrDefault(session.Status, sessionsrepo.StatusPlanned),
		Notes:           validation.GetStringOrEmpty(session.Notes),
	}
}

// MarshalListToBridge converts a list of stored rows to bridge models.
func MarshalListToBridge(sessions []sessionsrepo.Session) []Session {
	bridgeSessions := make([]Session, len(sessions))
	for i, session := range sessions {
		bridgeSessions[i] = MarshalToBridge(session)
	}
	return bridgeSessions
}

// MarshalStartToRepository converts bridge start input to repository input,
// applying the documented defaults for absent fields.
func MarshalStartToRepository(input StartSessionInput) sessionsrepo.StartSession {
	return sessionsrepo.StartSession{
		TaskID:          input.TaskID,
		DurationMinutes: validation.GetIntOrDefault(input.DurationMinutes, sessionsrepo.DefaultDurationMinutes),
		Type:            validation.GetIntOrDefault(input.Type, sessionsrepo.TypeWork),
		Status:          validation.GetIntOrDefault(input.Status, sessionsrepo.StatusPlanned),
		Notes:           validation.GetStringOrEmpty(input.Notes),
	}
}

// MarshalUpdateToRepository converts bridge field-update input to repository
// input. Time fields never travel through here.
func MarshalUpdateToRepository(input UpdateSessionInput) sessionsrepo.UpdateSession {
	return sessionsrepo.UpdateSession{
		DurationMinutes: validation.GetIntOrDefault(input.DurationMinutes, sessionsrepo.DefaultDurationMinutes),
		Type:            validation.GetIntOrDefault(input.Type, sessionsrepo.TypeWork),
		Status:          validation.GetIntOrDefault(input.Status, sessionsrepo.StatusPlanned),
		Notes:           validation.GetStringOrEmpty(input.Notes),
	}
}
