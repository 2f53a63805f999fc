package reports

import (
	"testing"

	"caces/models"
	sessionModels "caces/models/session"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSessionStatsEmptyInputs(t *testing.T) {
	// Participants present but no results and no questions: zeros, no NaN.
	sess := mkSession(1, sessionModels.StatusCompleted, 1, []uint{10},
		mkParticipant(uintPtr(1), "Durand"),
		mkParticipant(uintPtr(2), "Martin"),
	)
	devices := BuildDeviceMap([]models.VotingDevice{mkDevice(1, "D1"), mkDevice(2, "D2")})

	stats := CalculateSessionStats(&sess, nil, nil, nil, nil, devices, DefaultOptions())

	assert.Equal(t, SessionStats{AverageScore: 0, SuccessRate: 0}, stats)
}

func TestCalculateSessionStatsNoParticipants(t *testing.T) {
	sess := mkSession(1, sessionModels.StatusCompleted, 1, []uint{10})
	stats := CalculateSessionStats(&sess, nil, nil, nil, nil, nil, DefaultOptions())
	assert.Equal(t, SessionStats{}, stats)
}

func TestCalculateSessionStatsResolvesDeviceSerials(t *testing.T) {
	themes := []models.Theme{mkTheme(1, "T1", 1)}
	blocs := []models.Bloc{mkBloc(10, "B1", 1)}
	questions := []models.Question{
		mkQuestion(1, uintPtr(10), "A", false),
		mkQuestion(2, uintPtr(10), "B", false),
	}
	devices := BuildDeviceMap([]models.VotingDevice{mkDevice(1, "D1"), mkDevice(2, "D2")})

	sess := mkSession(1, sessionModels.StatusCompleted, 1, []uint{10},
		mkParticipant(uintPtr(1), "Durand"), // both correct -> 100, pass
		mkParticipant(uintPtr(2), "Martin"), // both wrong -> 0, fail
	)
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
		mkResult(1, 1, "D2", "C", false),
		mkResult(1, 2, "D2", "C", false),
	}

	stats := CalculateSessionStats(&sess, results, questions, themes, blocs, devices, DefaultOptions())

	assert.Equal(t, 50.0, stats.AverageScore)
	assert.Equal(t, 50.0, stats.SuccessRate)
}

func TestCalculateSessionStatsUnresolvableDeviceScoresZero(t *testing.T) {
	questions := []models.Question{mkQuestion(1, uintPtr(10), "A", false)}
	devices := BuildDeviceMap([]models.VotingDevice{mkDevice(1, "D1")})

	// Second participant has a dangling device ID; their (unlocatable)
	// results must not crash the rollup.
	sess := mkSession(1, sessionModels.StatusCompleted, 1, []uint{10},
		mkParticipant(uintPtr(1), "Durand"),
		mkParticipant(uintPtr(99), "Martin"),
	)
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
	}

	stats := CalculateSessionStats(&sess, results, questions, nil, nil, devices, DefaultOptions())

	assert.Equal(t, 50.0, stats.AverageScore)
	assert.Equal(t, 50.0, stats.SuccessRate)
}

func TestCalculateSessionStatsStrictEliminatory(t *testing.T) {
	themes := []models.Theme{mkTheme(1, "T1", 1)}
	blocs := []models.Bloc{mkBloc(10, "B1", 1)}
	// Four questions, one eliminatory. Participant gets 3/4 (75%) but
	// misses the eliminatory one.
	questions := []models.Question{
		mkQuestion(1, uintPtr(10), "A", false),
		mkQuestion(2, uintPtr(10), "B", false),
		mkQuestion(3, uintPtr(10), "C", false),
		mkQuestion(4, uintPtr(10), "D", true),
	}
	devices := BuildDeviceMap([]models.VotingDevice{mkDevice(1, "D1")})
	sess := mkSession(1, sessionModels.StatusCompleted, 1, []uint{10},
		mkParticipant(uintPtr(1), "Durand"),
	)
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
		mkResult(1, 3, "D1", "C", true),
		mkResult(1, 4, "D1", "X", false),
	}

	strict := DefaultOptions()
	stats := CalculateSessionStats(&sess, results, questions, themes, blocs, devices, strict)
	assert.Equal(t, 0.0, stats.SuccessRate, "strict mode fails on eliminatory miss")

	lenient := strict
	lenient.StrictEliminatory = false
	stats = CalculateSessionStats(&sess, results, questions, themes, blocs, devices, lenient)
	assert.Equal(t, 100.0, stats.SuccessRate, "75 with theme floor met passes without strict rule")
}
