package reports

import (
	"time"

	sessionModels "caces/models/session"

	"github.com/jinzhu/now"
)

// EndOfDay pushes a date to 23:59:59.999999999 so an inclusive end bound
// keeps sessions administered any time that day.
func EndOfDay(t time.Time) time.Time {
	return now.With(t).EndOfDay()
}

// FilterSessionsByDateRange keeps sessions with startDate <= dateSession <=
// endOfDay(endDate). A nil bound means unbounded on that side.
func FilterSessionsByDateRange(sessions []sessionModels.Session, startDate, endDate *time.Time) []sessionModels.Session {
	if startDate == nil && endDate == nil {
		return sessions
	}

	var end time.Time
	if endDate != nil {
		end = EndOfDay(*endDate)
	}

	filtered := make([]sessionModels.Session, 0, len(sessions))
	for _, s := range sessions {
		if startDate != nil && s.DateSession.Before(*startDate) {
			continue
		}
		if endDate != nil && s.DateSession.After(end) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// FilterSessionsByStatus keeps sessions with the given status.
func FilterSessionsByStatus(sessions []sessionModels.Session, status string) []sessionModels.Session {
	filtered := make([]sessionModels.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Status == status {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// CompletedSessions keeps the sessions that feed report statistics.
func CompletedSessions(sessions []sessionModels.Session) []sessionModels.Session {
	return FilterSessionsByStatus(sessions, sessionModels.StatusCompleted)
}

// ResultsForSession narrows a result snapshot to one session.
func ResultsForSession(results []sessionModels.SessionResult, sessionID uint) []sessionModels.SessionResult {
	filtered := make([]sessionModels.SessionResult, 0, len(results))
	for _, r := range results {
		if r.SessionID == sessionID {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// resultsForSerial narrows a session's results to one device serial number.
func resultsForSerial(results []sessionModels.SessionResult, serial string) []sessionModels.SessionResult {
	filtered := make([]sessionModels.SessionResult, 0, len(results))
	for _, r := range results {
		if r.ParticipantIDBoitier == serial {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// sessionSelectsBloc reports whether the session's frozen bloc selection
// includes the given bloc.
func sessionSelectsBloc(s *sessionModels.Session, blocID uint) bool {
	for _, id := range s.BlocIDs() {
		if id == blocID {
			return true
		}
	}
	return false
}
