package models

import "gorm.io/gorm"

// AdminSettings is a single-row, typed configuration record. Thresholds are
// percentages. StrictEliminatory controls whether an incorrect answer to an
// eliminatory question independently fails a participant; when false the
// rule only manifests through the per-theme floor.
type AdminSettings struct {
	gorm.Model
	PassThreshold     float64 `json:"pass_threshold" gorm:"default:70"`
	ThemeFloor        float64 `json:"theme_floor" gorm:"default:50"`
	StrictEliminatory bool    `json:"strict_eliminatory" gorm:"default:true"`
	DefaultKitName    string  `json:"default_kit_name"`
	ReportFooter      string  `json:"report_footer"`
}
