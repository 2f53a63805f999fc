package reports

import (
	"sort"
	"strings"
	"time"

	"caces/models"
	sessionModels "caces/models/session"
)

// questionsForBloc restricts the question snapshot to a single bloc.
// Orphan questions never match.
func questionsForBloc(questions []models.Question, blocID uint) []models.Question {
	filtered := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if q.BlocID != nil && *q.BlocID == blocID {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// questionsForBlocSet restricts the question snapshot to a set of blocs.
func questionsForBlocSet(questions []models.Question, blocIDs map[uint]bool) []models.Question {
	filtered := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if q.BlocID != nil && blocIDs[*q.BlocID] {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// CalculateBlockStats aggregates one bloc across every completed session
// whose frozen selection includes it. Session scores are restricted to the
// bloc's own questions so unrelated blocs in the same session cannot bleed
// into the numbers. Returns nil when the bloc's taxonomy chain is broken;
// callers skip nil rows.
func CalculateBlockStats(blocID uint, sessions []sessionModels.Session, results []sessionModels.SessionResult, questions []models.Question, referentiels []models.Referentiel, themes []models.Theme, blocs []models.Bloc, devices map[uint]string, opts Options) *BlockOverallStats {
	tax := ResolveBlocTaxonomy(blocID, blocs, themes)
	if tax == nil {
		return nil
	}
	ref := findReferentiel(tax.ReferentielID, referentiels)
	if ref == nil {
		return nil
	}

	var blocCode string
	for i := range blocs {
		if blocs[i].ID == blocID {
			blocCode = blocs[i].CodeBloc
			break
		}
	}

	blocQuestions := questionsForBloc(questions, blocID)

	stats := &BlockOverallStats{
		BlocID:          blocID,
		BlocCode:        blocCode,
		ThemeCode:       tax.ThemeCode,
		ThemeName:       tax.ThemeName,
		ReferentielCode: ref.Code,
	}

	var scoreSum, rateSum float64
	for i := range sessions {
		s := &sessions[i]
		if s.Status != sessionModels.StatusCompleted || !sessionSelectsBloc(s, blocID) {
			continue
		}
		stats.UsageCount++
		sessionStats := CalculateSessionStats(s, ResultsForSession(results, s.ID), blocQuestions, themes, blocs, devices, opts)
		scoreSum += sessionStats.AverageScore
		rateSum += sessionStats.SuccessRate
	}

	if stats.UsageCount > 0 {
		stats.AverageScore = scoreSum / float64(stats.UsageCount)
		stats.AverageSuccessRate = rateSum / float64(stats.UsageCount)
	}
	return stats
}

// CalculateAllBlockStats computes block stats for every bloc, skipping those
// with broken taxonomy, and returns them in the report's sort order.
func CalculateAllBlockStats(sessions []sessionModels.Session, results []sessionModels.SessionResult, questions []models.Question, referentiels []models.Referentiel, themes []models.Theme, blocs []models.Bloc, devices map[uint]string, opts Options) []BlockOverallStats {
	all := make([]BlockOverallStats, 0, len(blocs))
	for i := range blocs {
		if stats := CalculateBlockStats(blocs[i].ID, sessions, results, questions, referentiels, themes, blocs, devices, opts); stats != nil {
			all = append(all, *stats)
		}
	}
	SortBlockStats(all)
	return all
}

// SortBlockStats orders rows by (referentiel code, theme code, bloc code)
// ascending so report tables are deterministic across runs.
func SortBlockStats(stats []BlockOverallStats) {
	sort.SliceStable(stats, func(i, j int) bool {
		if c := strings.Compare(stats[i].ReferentielCode, stats[j].ReferentielCode); c != 0 {
			return c < 0
		}
		if c := strings.Compare(stats[i].ThemeCode, stats[j].ThemeCode); c != 0 {
			return c < 0
		}
		return strings.Compare(stats[i].BlocCode, stats[j].BlocCode) < 0
	})
}

// CalculateOverallThemeStats applies the same filter -> restrict -> average
// pattern one taxonomy level up: a session is in scope for a theme when its
// selection includes any of the theme's blocs, and scoring is restricted to
// those blocs' questions.
func CalculateOverallThemeStats(sessions []sessionModels.Session, results []sessionModels.SessionResult, questions []models.Question, referentiels []models.Referentiel, themes []models.Theme, blocs []models.Bloc, devices map[uint]string, opts Options) []ThemeOverallStats {
	all := make([]ThemeOverallStats, 0, len(themes))

	for i := range themes {
		theme := &themes[i]
		ref := findReferentiel(theme.ReferentielID, referentiels)
		if ref == nil {
			continue
		}

		themeBlocs := make(map[uint]bool)
		for j := range blocs {
			if blocs[j].ThemeID == theme.ID {
				themeBlocs[blocs[j].ID] = true
			}
		}

		stats := ThemeOverallStats{
			ThemeID:         theme.ID,
			ThemeCode:       theme.CodeTheme,
			ThemeName:       theme.NomComplet,
			ReferentielCode: ref.Code,
		}

		var scoreSum, rateSum float64
		for j := range sessions {
			s := &sessions[j]
			if s.Status != sessionModels.StatusCompleted {
				continue
			}
			// Restrict to the theme blocs this session actually
			// administered; a session is scored only on its own
			// frozen selection.
			selected := make(map[uint]bool)
			for _, id := range s.BlocIDs() {
				if themeBlocs[id] {
					selected[id] = true
				}
			}
			if len(selected) == 0 {
				continue
			}
			stats.UsageCount++
			sessionQuestions := questionsForBlocSet(questions, selected)
			sessionStats := CalculateSessionStats(s, ResultsForSession(results, s.ID), sessionQuestions, themes, blocs, devices, opts)
			scoreSum += sessionStats.AverageScore
			rateSum += sessionStats.SuccessRate
		}

		if stats.UsageCount > 0 {
			stats.AverageScore = scoreSum / float64(stats.UsageCount)
			stats.AverageSuccessRate = rateSum / float64(stats.UsageCount)
		}
		all = append(all, stats)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if c := strings.Compare(all[i].ReferentielCode, all[j].ReferentielCode); c != 0 {
			return c < 0
		}
		return strings.Compare(all[i].ThemeCode, all[j].ThemeCode) < 0
	})
	return all
}

// CalculateReferentielStats aggregates completed sessions per referential,
// optionally restricted to an inclusive date range (end bound pushed to end
// of day) before grouping.
func CalculateReferentielStats(sessions []sessionModels.Session, results []sessionModels.SessionResult, questions []models.Question, referentiels []models.Referentiel, themes []models.Theme, blocs []models.Bloc, devices map[uint]string, startDate, endDate *time.Time, opts Options) []ReferentielOverallStats {
	inRange := FilterSessionsByDateRange(sessions, startDate, endDate)

	all := make([]ReferentielOverallStats, 0, len(referentiels))
	for i := range referentiels {
		ref := &referentiels[i]

		refBlocs := make(map[uint]bool)
		for j := range themes {
			if themes[j].ReferentielID != ref.ID {
				continue
			}
			for k := range blocs {
				if blocs[k].ThemeID == themes[j].ID {
					refBlocs[blocs[k].ID] = true
				}
			}
		}

		stats := ReferentielOverallStats{
			ReferentielID:   ref.ID,
			ReferentielCode: ref.Code,
			NomComplet:      ref.NomComplet,
		}

		var scoreSum, rateSum float64
		for j := range inRange {
			s := &inRange[j]
			if s.Status != sessionModels.StatusCompleted || s.ReferentielID != ref.ID {
				continue
			}
			stats.UsageCount++
			// Score each session against its own frozen selection
			// inside this referential.
			selected := make(map[uint]bool)
			for _, id := range s.BlocIDs() {
				if refBlocs[id] {
					selected[id] = true
				}
			}
			sessionQuestions := questionsForBlocSet(questions, selected)
			sessionStats := CalculateSessionStats(s, ResultsForSession(results, s.ID), sessionQuestions, themes, blocs, devices, opts)
			scoreSum += sessionStats.AverageScore
			rateSum += sessionStats.SuccessRate
		}

		if stats.UsageCount > 0 {
			stats.AverageScore = scoreSum / float64(stats.UsageCount)
			stats.AverageSuccessRate = rateSum / float64(stats.UsageCount)
		}
		all = append(all, stats)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return strings.Compare(all[i].ReferentielCode, all[j].ReferentielCode) < 0
	})
	return all
}

// CalculateNumericBlockPerformanceForSession reports how one session
// performed on one bloc. Returns nil when the session never selected the
// bloc or the taxonomy chain is broken.
func CalculateNumericBlockPerformanceForSession(blocID uint, sess *sessionModels.Session, results []sessionModels.SessionResult, questions []models.Question, devices map[uint]string, themes []models.Theme, blocs []models.Bloc, opts Options) *BlockPerfStats {
	if !sessionSelectsBloc(sess, blocID) {
		return nil
	}
	tax := ResolveBlocTaxonomy(blocID, blocs, themes)
	if tax == nil {
		return nil
	}

	var blocCode string
	for i := range blocs {
		if blocs[i].ID == blocID {
			blocCode = blocs[i].CodeBloc
			break
		}
	}

	blocQuestions := questionsForBloc(questions, blocID)
	sessionStats := CalculateSessionStats(sess, ResultsForSession(results, sess.ID), blocQuestions, themes, blocs, devices, opts)

	return &BlockPerfStats{
		BlocID:           blocID,
		BlocCode:         blocCode,
		ThemeName:        tax.ThemeName,
		ParticipantCount: len(sess.Participants),
		AverageScore:     sessionStats.AverageScore,
		SuccessRate:      sessionStats.SuccessRate,
	}
}
