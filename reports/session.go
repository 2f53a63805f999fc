package reports

import (
	"caces/models"
	sessionModels "caces/models/session"
)

// CalculateSessionStats rolls participant scores up to session level.
// Each participant's results are located through the device-serial
// indirection: assigned device ID -> serial number -> result boitier ID.
// A participant whose device cannot be resolved simply has no results and
// scores 0; a session with no participants reports zeros, never NaN.
func CalculateSessionStats(sess *sessionModels.Session, results []sessionModels.SessionResult, questions []models.Question, themes []models.Theme, blocs []models.Bloc, devices map[uint]string, opts Options) SessionStats {
	if len(sess.Participants) == 0 {
		return SessionStats{}
	}

	var scoreSum float64
	passed := 0
	for i := range sess.Participants {
		p := &sess.Participants[i]

		var pResults []sessionModels.SessionResult
		if p.AssignedGlobalDeviceID != nil {
			if serial, ok := devices[*p.AssignedGlobalDeviceID]; ok {
				pResults = resultsForSerial(results, serial)
			}
		}

		score := CalculateParticipantScore(pResults, questions)
		scoreSum += score

		themeScores := CalculateThemeScores(pResults, questions, themes, blocs)
		success := DetermineIndividualSuccess(score, themeScores, opts)
		if success && opts.StrictEliminatory && HasEliminatoryFailure(pResults, questions) {
			success = false
		}
		if success {
			passed++
		}
	}

	count := float64(len(sess.Participants))
	return SessionStats{
		AverageScore: scoreSum / count,
		SuccessRate:  float64(passed) / count * 100,
	}
}
