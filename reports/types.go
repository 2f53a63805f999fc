package reports

import "caces/models"

// UnspecifiedTheme labels questions whose bloc cannot be resolved to a
// theme. Reports keep aggregating instead of failing on a dangling link.
const UnspecifiedTheme = "Thème non spécifié"

// Options carries the scoring policy resolved from admin settings.
type Options struct {
	PassThreshold     float64 // global pass mark, percent
	ThemeFloor        float64 // per-theme minimum, percent
	StrictEliminatory bool    // eliminatory miss fails regardless of score
}

// DefaultOptions returns the stock CACES policy: 70% global, 50% per theme,
// strict eliminatory enforcement.
func DefaultOptions() Options {
	return Options{PassThreshold: 70, ThemeFloor: 50, StrictEliminatory: true}
}

// ThemeScore is one participant's result on a single theme.
type ThemeScore struct {
	Score   float64 `json:"score"`
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
}

// BlocTaxonomy resolves a bloc up the Referentiel -> Theme -> Bloc chain.
type BlocTaxonomy struct {
	ThemeID       uint   `json:"theme_id"`
	ThemeCode     string `json:"theme_code"`
	ThemeName     string `json:"theme_name"`
	ReferentielID uint   `json:"referentiel_id"`
}

// SessionStats is the session-level rollup of participant scores.
type SessionStats struct {
	AverageScore float64 `json:"average_score"`
	SuccessRate  float64 `json:"success_rate"`
}

// BlockOverallStats aggregates one bloc across every completed session that
// selected it.
type BlockOverallStats struct {
	BlocID             uint    `json:"bloc_id"`
	BlocCode           string  `json:"bloc_code"`
	ThemeCode          string  `json:"theme_code"`
	ThemeName          string  `json:"theme_name"`
	ReferentielCode    string  `json:"referentiel_code"`
	UsageCount         int     `json:"usage_count"`
	AverageScore       float64 `json:"average_score"`
	AverageSuccessRate float64 `json:"average_success_rate"`
}

// ThemeOverallStats aggregates one theme across completed sessions.
type ThemeOverallStats struct {
	ThemeID            uint    `json:"theme_id"`
	ThemeCode          string  `json:"theme_code"`
	ThemeName          string  `json:"theme_name"`
	ReferentielCode    string  `json:"referentiel_code"`
	UsageCount         int     `json:"usage_count"`
	AverageScore       float64 `json:"average_score"`
	AverageSuccessRate float64 `json:"average_success_rate"`
}

// ReferentielOverallStats aggregates one referential across completed
// sessions, optionally restricted to a date range by the caller.
type ReferentielOverallStats struct {
	ReferentielID      uint    `json:"referentiel_id"`
	ReferentielCode    string  `json:"referentiel_code"`
	NomComplet         string  `json:"nom_complet"`
	UsageCount         int     `json:"usage_count"`
	AverageScore       float64 `json:"average_score"`
	AverageSuccessRate float64 `json:"average_success_rate"`
}

// BlockPerfStats is the bloc-restricted performance of one session.
type BlockPerfStats struct {
	BlocID           uint    `json:"bloc_id"`
	BlocCode         string  `json:"bloc_code"`
	ThemeName        string  `json:"theme_name"`
	ParticipantCount int     `json:"participant_count"`
	AverageScore     float64 `json:"average_score"`
	SuccessRate      float64 `json:"success_rate"`
}

// BuildDeviceMap indexes voting devices by database ID for the
// device-ID -> serial-number resolution scoring depends on.
func BuildDeviceMap(devices []models.VotingDevice) map[uint]string {
	m := make(map[uint]string, len(devices))
	for _, d := range devices {
		m[d.ID] = d.SerialNumber
	}
	return m
}
