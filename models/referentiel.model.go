package models

import "gorm.io/gorm"

// Referentiel is a CACES certification scheme (e.g. R489)
type Referentiel struct {
	gorm.Model
	Code       string `json:"code" gorm:"unique;not null"`
	NomComplet string `json:"nom_complet"`
	IsDeleted  bool   `gorm:"default:false"`
}
