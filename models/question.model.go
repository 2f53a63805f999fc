package models

import "gorm.io/gorm"

// Question belongs to at most one bloc. A nil BlocID marks an orphan
// question, which never participates in bloc or theme statistics.
type Question struct {
	gorm.Model
	Text          string `json:"text" gorm:"not null"`
	BlocID        *uint  `json:"bloc_id" gorm:"index"`
	CorrectAnswer string `json:"correct_answer" gorm:"not null"`
	Options       string `json:"options"` // JSON array of answer labels
	IsEliminatory bool   `json:"is_eliminatory" gorm:"default:false"`
	TimeLimit     int    `json:"time_limit" gorm:"default:30"` // seconds
	ImagePath     string `json:"image_path"`
	IsDeleted     bool   `gorm:"default:false"`
}
