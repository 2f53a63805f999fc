package reports

import (
	"testing"
	"time"

	"caces/models"
	sessionModels "caces/models/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockFixture is the shared taxonomy for the rollup tests:
// R489 -> T2 -> B5 with two questions, plus a sibling bloc B6.
type blockFixture struct {
	referentiels []models.Referentiel
	themes       []models.Theme
	blocs        []models.Bloc
	questions    []models.Question
	devices      map[uint]string
}

func newBlockFixture() blockFixture {
	return blockFixture{
		referentiels: []models.Referentiel{mkReferentiel(1, "R489")},
		themes:       []models.Theme{mkTheme(2, "T2", 1)},
		blocs: []models.Bloc{
			mkBloc(5, "B5", 2),
			mkBloc(6, "B6", 2),
		},
		questions: []models.Question{
			mkQuestion(1, uintPtr(5), "A", false),
			mkQuestion(2, uintPtr(5), "B", false),
			mkQuestion(3, uintPtr(6), "C", false),
			mkQuestion(4, uintPtr(6), "D", false),
		},
		devices: BuildDeviceMap([]models.VotingDevice{mkDevice(1, "D1"), mkDevice(2, "D2")}),
	}
}

func TestCalculateBlockStatsAveragesAcrossSessions(t *testing.T) {
	// Scenario: S1 contributes 100% success on B5, S2 contributes 0%.
	f := newBlockFixture()

	s1 := mkSession(1, sessionModels.StatusCompleted, 1, []uint{5}, mkParticipant(uintPtr(1), "Durand"))
	s2 := mkSession(2, sessionModels.StatusCompleted, 1, []uint{5}, mkParticipant(uintPtr(2), "Martin"))
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
		mkResult(2, 1, "D2", "X", false),
		mkResult(2, 2, "D2", "X", false),
	}

	stats := CalculateBlockStats(5, []sessionModels.Session{s1, s2}, results, f.questions, f.referentiels, f.themes, f.blocs, f.devices, DefaultOptions())

	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.UsageCount)
	assert.Equal(t, 50.0, stats.AverageSuccessRate)
	assert.Equal(t, 50.0, stats.AverageScore)
	assert.Equal(t, "B5", stats.BlocCode)
	assert.Equal(t, "T2", stats.ThemeCode)
	assert.Equal(t, "R489", stats.ReferentielCode)
}

func TestCalculateBlockStatsIsolatedFromOtherBlocs(t *testing.T) {
	// Changing results tied to B6 questions must not move B5's numbers.
	f := newBlockFixture()

	sess := mkSession(1, sessionModels.StatusCompleted, 1, []uint{5, 6}, mkParticipant(uintPtr(1), "Durand"))
	base := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
		mkResult(1, 3, "D1", "C", true),
		mkResult(1, 4, "D1", "D", true),
	}
	flipped := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
		mkResult(1, 3, "D1", "X", false),
		mkResult(1, 4, "D1", "X", false),
	}

	sessions := []sessionModels.Session{sess}
	before := CalculateBlockStats(5, sessions, base, f.questions, f.referentiels, f.themes, f.blocs, f.devices, DefaultOptions())
	after := CalculateBlockStats(5, sessions, flipped, f.questions, f.referentiels, f.themes, f.blocs, f.devices, DefaultOptions())

	require.NotNil(t, before)
	require.NotNil(t, after)
	assert.Equal(t, *before, *after)
}

func TestCalculateBlockStatsSkipsNonCompletedSessions(t *testing.T) {
	f := newBlockFixture()

	completed := mkSession(1, sessionModels.StatusCompleted, 1, []uint{5}, mkParticipant(uintPtr(1), "Durand"))
	planned := mkSession(2, sessionModels.StatusPlanned, 1, []uint{5}, mkParticipant(uintPtr(2), "Martin"))
	inProgress := mkSession(3, sessionModels.StatusInProgress, 1, []uint{5}, mkParticipant(uintPtr(2), "Martin"))
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
	}

	stats := CalculateBlockStats(5, []sessionModels.Session{completed, planned, inProgress}, results, f.questions, f.referentiels, f.themes, f.blocs, f.devices, DefaultOptions())

	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.UsageCount)
	assert.Equal(t, 100.0, stats.AverageSuccessRate)
}

func TestCalculateBlockStatsDanglingTaxonomyReturnsNil(t *testing.T) {
	f := newBlockFixture()

	// Unknown bloc.
	assert.Nil(t, CalculateBlockStats(99, nil, nil, f.questions, f.referentiels, f.themes, f.blocs, f.devices, DefaultOptions()))

	// Bloc whose theme is missing from the snapshot.
	orphanBlocs := append([]models.Bloc{}, f.blocs...)
	orphanBlocs = append(orphanBlocs, mkBloc(7, "B7", 999))
	assert.Nil(t, CalculateBlockStats(7, nil, nil, f.questions, f.referentiels, f.themes, orphanBlocs, f.devices, DefaultOptions()))

	// Theme whose referential is missing.
	themes := append([]models.Theme{}, f.themes...)
	themes = append(themes, mkTheme(3, "T3", 999))
	blocs := append([]models.Bloc{}, f.blocs...)
	blocs = append(blocs, mkBloc(8, "B8", 3))
	assert.Nil(t, CalculateBlockStats(8, nil, nil, f.questions, f.referentiels, themes, blocs, f.devices, DefaultOptions()))
}

func TestCalculateAllBlockStatsSortOrder(t *testing.T) {
	// Rows sort by (referentiel, theme, bloc) codes whatever the input
	// order of the collections.
	referentiels := []models.Referentiel{mkReferentiel(2, "R490"), mkReferentiel(1, "R489")}
	themes := []models.Theme{
		mkTheme(3, "T9", 2),
		mkTheme(1, "T1", 1),
		mkTheme(2, "T2", 1),
	}
	blocs := []models.Bloc{
		mkBloc(12, "B2", 3),
		mkBloc(11, "B9", 2),
		mkBloc(10, "B1", 2),
		mkBloc(13, "B1", 1),
	}

	stats := CalculateAllBlockStats(nil, nil, nil, referentiels, themes, blocs, nil, DefaultOptions())

	require.Len(t, stats, 4)
	keys := make([][3]string, len(stats))
	for i, s := range stats {
		keys[i] = [3]string{s.ReferentielCode, s.ThemeCode, s.BlocCode}
	}
	assert.Equal(t, [][3]string{
		{"R489", "T1", "B1"},
		{"R489", "T2", "B1"},
		{"R489", "T2", "B9"},
		{"R490", "T9", "B2"},
	}, keys)
}

func TestCalculateOverallThemeStats(t *testing.T) {
	f := newBlockFixture()

	s1 := mkSession(1, sessionModels.StatusCompleted, 1, []uint{5}, mkParticipant(uintPtr(1), "Durand"))
	s2 := mkSession(2, sessionModels.StatusCompleted, 1, []uint{6}, mkParticipant(uintPtr(2), "Martin"))
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
		mkResult(2, 3, "D2", "C", true),
		mkResult(2, 4, "D2", "X", false),
	}

	stats := CalculateOverallThemeStats([]sessionModels.Session{s1, s2}, results, f.questions, f.referentiels, f.themes, f.blocs, f.devices, DefaultOptions())

	require.Len(t, stats, 1)
	// Both sessions touch theme T2 through different blocs.
	assert.Equal(t, 2, stats[0].UsageCount)
	assert.Equal(t, "T2", stats[0].ThemeCode)
	// S1: 100 on its selected theme questions; S2: 50.
	assert.Equal(t, 75.0, stats[0].AverageScore)
}

func TestCalculateReferentielStatsGroupsAndAverages(t *testing.T) {
	// S1 scores 100% on R489, S2 scores 0%; R490 has no completed session.
	f := newBlockFixture()
	referentiels := append([]models.Referentiel{}, f.referentiels...)
	referentiels = append(referentiels, mkReferentiel(2, "R490"))

	s1 := mkSession(1, sessionModels.StatusCompleted, 1, []uint{5}, mkParticipant(uintPtr(1), "Durand"))
	s2 := mkSession(2, sessionModels.StatusCompleted, 1, []uint{5}, mkParticipant(uintPtr(2), "Martin"))
	planned := mkSession(3, sessionModels.StatusPlanned, 1, []uint{5}, mkParticipant(uintPtr(2), "Martin"))
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
		mkResult(2, 1, "D2", "X", false),
		mkResult(2, 2, "D2", "X", false),
	}

	stats := CalculateReferentielStats([]sessionModels.Session{s1, s2, planned}, results, f.questions, referentiels, f.themes, f.blocs, f.devices, nil, nil, DefaultOptions())

	require.Len(t, stats, 2)
	assert.Equal(t, "R489", stats[0].ReferentielCode)
	assert.Equal(t, 2, stats[0].UsageCount)
	assert.Equal(t, 50.0, stats[0].AverageScore)
	assert.Equal(t, 50.0, stats[0].AverageSuccessRate)
	assert.Equal(t, "R490", stats[1].ReferentielCode)
	assert.Equal(t, 0, stats[1].UsageCount)
	assert.Equal(t, 0.0, stats[1].AverageScore)
}

func TestCalculateReferentielStatsDateBoundary(t *testing.T) {
	// The end bound is inclusive through 23:59:59 of the end date; the
	// first moment of the next day falls outside.
	f := newBlockFixture()

	boundary := mkSession(1, sessionModels.StatusCompleted, 1, []uint{5}, mkParticipant(uintPtr(1), "Durand"))
	boundary.DateSession = time.Date(2025, 3, 15, 23, 59, 59, 0, time.Local)
	nextDay := mkSession(2, sessionModels.StatusCompleted, 1, []uint{5}, mkParticipant(uintPtr(2), "Martin"))
	nextDay.DateSession = time.Date(2025, 3, 16, 0, 0, 0, 0, time.Local)

	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "B", true),
		mkResult(2, 1, "D2", "X", false),
		mkResult(2, 2, "D2", "X", false),
	}

	endDate := timePtr(time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local))
	stats := CalculateReferentielStats([]sessionModels.Session{boundary, nextDay}, results, f.questions, f.referentiels, f.themes, f.blocs, f.devices, nil, endDate, DefaultOptions())

	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].UsageCount)
	assert.Equal(t, 100.0, stats[0].AverageScore)
	assert.Equal(t, 100.0, stats[0].AverageSuccessRate)
}

func TestCalculateNumericBlockPerformanceForSession(t *testing.T) {
	f := newBlockFixture()

	sess := mkSession(1, sessionModels.StatusCompleted, 1, []uint{5}, mkParticipant(uintPtr(1), "Durand"))
	results := []sessionModels.SessionResult{
		mkResult(1, 1, "D1", "A", true),
		mkResult(1, 2, "D1", "X", false),
	}

	perf := CalculateNumericBlockPerformanceForSession(5, &sess, results, f.questions, f.devices, f.themes, f.blocs, DefaultOptions())

	require.NotNil(t, perf)
	assert.Equal(t, "B5", perf.BlocCode)
	assert.Equal(t, 1, perf.ParticipantCount)
	assert.Equal(t, 50.0, perf.AverageScore)
	assert.Equal(t, 0.0, perf.SuccessRate)

	// Session never selected B6.
	assert.Nil(t, CalculateNumericBlockPerformanceForSession(6, &sess, results, f.questions, f.devices, f.themes, f.blocs, DefaultOptions()))
}
