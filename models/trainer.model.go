package models

import "gorm.io/gorm"

type Trainer struct {
	gorm.Model
	Nom       string `json:"nom" gorm:"not null"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	IsDefault bool   `json:"is_default" gorm:"default:false"`
	IsDeleted bool   `gorm:"default:false"`
}
