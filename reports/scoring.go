package reports

import (
	"caces/models"
	sessionModels "caces/models/session"
)

// questionIDSet indexes the supplied questions so stale results from an
// earlier bloc selection can be filtered out.
func questionIDSet(questions []models.Question) map[uint]bool {
	set := make(map[uint]bool, len(questions))
	for _, q := range questions {
		set[q.ID] = true
	}
	return set
}

// CalculateParticipantScore computes a 0-100 score from one participant's
// raw results against the question set they were exposed to. Results whose
// question is not in the set are scoring-inert. A points value on the result
// wins; otherwise a correct answer is worth one point. An empty question set
// scores 0, never NaN.
func CalculateParticipantScore(results []sessionModels.SessionResult, questions []models.Question) float64 {
	if len(questions) == 0 {
		return 0
	}

	inScope := questionIDSet(questions)

	total := 0.0
	for _, r := range results {
		if !inScope[r.QuestionID] {
			continue
		}
		if r.PointsObtained != nil {
			total += *r.PointsObtained
		} else if r.IsCorrect {
			total++
		}
	}

	score := total / float64(len(questions)) * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// CalculateThemeScores groups the question set by resolved theme and
// computes each theme's percentage of correct answers among the questions
// the participant actually answered. Themes with no answered questions are
// omitted rather than zero-filled. Orphan questions (no bloc) are excluded.
func CalculateThemeScores(results []sessionModels.SessionResult, questions []models.Question, themes []models.Theme, blocs []models.Bloc) map[string]ThemeScore {
	// Index the participant's answers by question ID.
	answered := make(map[uint]bool, len(results))
	correct := make(map[uint]bool, len(results))
	for _, r := range results {
		answered[r.QuestionID] = true
		if r.IsCorrect {
			correct[r.QuestionID] = true
		}
	}

	scores := make(map[string]ThemeScore)
	for _, q := range questions {
		if q.BlocID == nil {
			continue
		}
		if !answered[q.ID] {
			continue
		}
		name := themeNameForBloc(*q.BlocID, blocs, themes)
		ts := scores[name]
		ts.Total++
		if correct[q.ID] {
			ts.Correct++
		}
		scores[name] = ts
	}

	for name, ts := range scores {
		ts.Score = float64(ts.Correct) / float64(ts.Total) * 100
		scores[name] = ts
	}
	return scores
}

// HasEliminatoryFailure reports whether the participant answered an
// eliminatory question incorrectly. Unanswered eliminatory questions do not
// count as failures. Derived from the question list directly, independent of
// theme floors.
func HasEliminatoryFailure(results []sessionModels.SessionResult, questions []models.Question) bool {
	eliminatory := make(map[uint]bool)
	for _, q := range questions {
		if q.IsEliminatory {
			eliminatory[q.ID] = true
		}
	}
	if len(eliminatory) == 0 {
		return false
	}

	for _, r := range results {
		if eliminatory[r.QuestionID] && !r.IsCorrect {
			return true
		}
	}
	return false
}

// DetermineIndividualSuccess applies the global pass mark and the per-theme
// floor. Eliminatory enforcement is layered on top by the caller when
// Options.StrictEliminatory is set.
func DetermineIndividualSuccess(score float64, themeScores map[string]ThemeScore, opts Options) bool {
	if score < opts.PassThreshold {
		return false
	}
	for _, ts := range themeScores {
		if ts.Score < opts.ThemeFloor {
			return false
		}
	}
	return true
}
