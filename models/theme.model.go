package models

import "gorm.io/gorm"

// Theme is a subject-matter grouping inside a referential
type Theme struct {
	gorm.Model
	CodeTheme     string `json:"code_theme" gorm:"not null"`
	NomComplet    string `json:"nom_complet"`
	ReferentielID uint   `json:"referentiel_id" gorm:"index;not null"`
	IsDeleted     bool   `gorm:"default:false"`
}
