package reports

import (
	"testing"

	"caces/models"
	sessionModels "caces/models/session"

	"github.com/stretchr/testify/assert"
)

func TestCalculateParticipantScoreHalfCorrect(t *testing.T) {
	// Two one-point questions, one answered correctly.
	questions := []models.Question{
		mkQuestion(1, uintPtr(10), "A", false),
		mkQuestion(2, uintPtr(10), "B", false),
	}
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "C", false),
	}

	assert.Equal(t, 50.0, CalculateParticipantScore(results, questions))
}

func TestCalculateParticipantScoreEmptyQuestionSet(t *testing.T) {
	// A session with zero assigned questions scores 0, never NaN.
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
	}

	score := CalculateParticipantScore(results, nil)
	assert.Equal(t, 0.0, score)
	assert.False(t, score != score, "score must not be NaN")
}

func TestCalculateParticipantScoreIgnoresStaleResults(t *testing.T) {
	// A result referencing a question outside the supplied set is
	// scoring-inert: neither numerator nor denominator moves.
	questions := []models.Question{
		mkQuestion(1, uintPtr(10), "A", false),
		mkQuestion(2, uintPtr(10), "B", false),
	}
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
		mkResult(1, 99, "D1", "A", true), // stale, question absent
	}

	assert.Equal(t, 100.0, CalculateParticipantScore(results, questions))
}

func TestCalculateParticipantScorePointsOverride(t *testing.T) {
	questions := []models.Question{
		mkQuestion(1, uintPtr(10), "A", false),
		mkQuestion(2, uintPtr(10), "B", false),
	}
	half := mkResult(1, 1, "D1", "A", true)
	half.PointsObtained = floatPtr(0.5)
	results := []sessionModels.SessionResult{
		half,
		mkResult(1, 2, "D1", "B", true),
	}

	assert.Equal(t, 75.0, CalculateParticipantScore(results, questions))
}

func TestCalculateParticipantScoreBounds(t *testing.T) {
	// Inflated point values must still clamp into [0, 100].
	questions := []models.Question{mkQuestion(1, uintPtr(10), "A", false)}

	over := mkResult(1, 1, "D1", "A", true)
	over.PointsObtained = floatPtr(5)
	assert.Equal(t, 100.0, CalculateParticipantScore([]sessionModels.SessionResult{over}, questions))

	under := mkResult(1, 1, "D1", "A", false)
	under.PointsObtained = floatPtr(-3)
	assert.Equal(t, 0.0, CalculateParticipantScore([]sessionModels.SessionResult{under}, questions))
}

func TestCalculateParticipantScoreDeterminism(t *testing.T) {
	questions := []models.Question{
		mkQuestion(1, uintPtr(10), "A", false),
		mkQuestion(2, uintPtr(10), "B", false),
		mkQuestion(3, uintPtr(11), "C", false),
	}
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "C", false),
		mkResult(1, 3, "D1", "C", true),
	}

	first := CalculateParticipantScore(results, questions)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateParticipantScore(results, questions))
	}
}

func TestCalculateThemeScores(t *testing.T) {
	themes := []models.Theme{
		mkTheme(1, "T1", 1),
		mkTheme(2, "T2", 1),
	}
	blocs := []models.Bloc{
		mkBloc(10, "B1", 1),
		mkBloc(11, "B2", 2),
		mkBloc(12, "B3", 2),
	}
	questions := []models.Question{
		mkQuestion(1, uintPtr(10), "A", false),
		mkQuestion(2, uintPtr(10), "B", false),
		mkQuestion(3, uintPtr(11), "C", false),
		mkQuestion(4, uintPtr(12), "D", false), // unanswered
		mkQuestion(5, nil, "A", false),         // orphan, excluded
	}
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "C", false),
		mkResult(1, 3, "D1", "C", true),
		mkResult(1, 5, "D1", "A", true),
	}

	scores := CalculateThemeScores(results, questions, themes, blocs)

	assert.Len(t, scores, 2)
	assert.Equal(t, ThemeScore{Score: 50, Correct: 1, Total: 2}, scores["Thème T1"])
	assert.Equal(t, ThemeScore{Score: 100, Correct: 1, Total: 1}, scores["Thème T2"])
}

func TestCalculateThemeScoresDanglingBlocGetsPlaceholder(t *testing.T) {
	themes := []models.Theme{mkTheme(1, "T1", 1)}
	blocs := []models.Bloc{mkBloc(10, "B1", 1)}
	questions := []models.Question{
		mkQuestion(1, uintPtr(10), "A", false),
		mkQuestion(2, uintPtr(999), "B", false), // bloc does not exist
	}
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
	}

	scores := CalculateThemeScores(results, questions, themes, blocs)

	assert.Contains(t, scores, UnspecifiedTheme)
	assert.Equal(t, 1, scores[UnspecifiedTheme].Total)
}

func TestHasEliminatoryFailure(t *testing.T) {
	questions := []models.Question{
		mkQuestion(1, uintPtr(10), "A", false),
		mkQuestion(2, uintPtr(10), "B", true),
	}

	missed := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "C", false),
	}
	assert.True(t, HasEliminatoryFailure(missed, questions))

	clean := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "C", false),
		mkResult(1, 2, "D1", "B", true),
	}
	assert.False(t, HasEliminatoryFailure(clean, questions))

	// Unanswered eliminatory questions are not failures.
	unanswered := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
	}
	assert.False(t, HasEliminatoryFailure(unanswered, questions))
}

func TestDetermineIndividualSuccess(t *testing.T) {
	opts := DefaultOptions()

	cases := []struct {
		name   string
		score  float64
		themes map[string]ThemeScore
		want   bool
	}{
		{"passes", 80, map[string]ThemeScore{"A": {Score: 90}, "B": {Score: 60}}, true},
		{"exactly at thresholds", 70, map[string]ThemeScore{"A": {Score: 50}}, true},
		{"global below mark", 69.9, map[string]ThemeScore{"A": {Score: 100}}, false},
		{"theme under floor", 95, map[string]ThemeScore{"A": {Score: 49}}, false},
		{"no theme breakdown", 75, nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DetermineIndividualSuccess(c.score, c.themes, opts))
		})
	}
}
