package reports

import (
	"testing"
	"time"

	sessionModels "caces/models/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSessionsByDateRangeEndOfDayBoundary(t *testing.T) {
	endDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	onBoundary := mkSession(1, sessionModels.StatusCompleted, 1, nil)
	onBoundary.DateSession = time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local)

	justAfter := mkSession(2, sessionModels.StatusCompleted, 1, nil)
	justAfter.DateSession = time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)

	filtered := FilterSessionsByDateRange([]sessionModels.Session{onBoundary, justAfter}, nil, timePtr(endDate))

	require.Len(t, filtered, 1)
	assert.Equal(t, uint(1), filtered[0].ID)
}

func TestFilterSessionsByDateRangeStartBound(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	before := mkSession(1, sessionModels.StatusCompleted, 1, nil)
	before.DateSession = start.Add(-time.Second)

	onStart := mkSession(2, sessionModels.StatusCompleted, 1, nil)
	onStart.DateSession = start

	filtered := FilterSessionsByDateRange([]sessionModels.Session{before, onStart}, timePtr(start), nil)

	require.Len(t, filtered, 1)
	assert.Equal(t, uint(2), filtered[0].ID)
}

func TestFilterSessionsByDateRangeNoBounds(t *testing.T) {
	sessions := []sessionModels.Session{
		mkSession(1, sessionModels.StatusCompleted, 1, nil),
		mkSession(2, sessionModels.StatusPlanned, 1, nil),
	}
	assert.Len(t, FilterSessionsByDateRange(sessions, nil, nil), 2)
}

func TestCompletedSessions(t *testing.T) {
	sessions := []sessionModels.Session{
		mkSession(1, sessionModels.StatusCompleted, 1, nil),
		mkSession(2, sessionModels.StatusPlanned, 1, nil),
		mkSession(3, sessionModels.StatusInProgress, 1, nil),
		mkSession(4, sessionModels.StatusCancelled, 1, nil),
		mkSession(5, sessionModels.StatusCompleted, 1, nil),
	}

	completed := CompletedSessions(sessions)

	require.Len(t, completed, 2)
	assert.Equal(t, uint(1), completed[0].ID)
	assert.Equal(t, uint(5), completed[1].ID)
}

func TestResultsForSession(t *testing.T) {
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(2, 1, "D1", "A", true),
		mkResult(1, 2, "D2", "B", false),
	}

	assert.Len(t, ResultsForSession(results, 1), 2)
	assert.Len(t, ResultsForSession(results, 2), 1)
	assert.Empty(t, ResultsForSession(results, 3))
}

func TestSessionBlocIDsCorruptColumn(t *testing.T) {
	s := mkSession(1, sessionModels.StatusCompleted, 1, []uint{5, 6})
	assert.Equal(t, []uint{5, 6}, s.BlocIDs())

	s.SelectedBlocIDs = "{not json"
	assert.Nil(t, s.BlocIDs())
}
