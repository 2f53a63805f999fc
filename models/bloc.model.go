package models

import "gorm.io/gorm"

// Bloc is a named set of exam questions inside a theme
type Bloc struct {
	gorm.Model
	CodeBloc  string `json:"code_bloc" gorm:"not null"`
	ThemeID   uint   `json:"theme_id" gorm:"index;not null"`
	IsDeleted bool   `gorm:"default:false"`
}
