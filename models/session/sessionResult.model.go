package session

import (
	"time"

	"gorm.io/gorm"
)

// SessionResult is one recorded answer for a (session, participant,
// question) triple. ParticipantIDBoitier carries the voting-device serial
// number string, not a participant or device foreign key.
type SessionResult struct {
	gorm.Model
	SessionID            uint      `json:"session_id" gorm:"index;not null"`
	QuestionID           uint      `json:"question_id" gorm:"index;not null"`
	ParticipantIDBoitier string    `json:"participant_id_boitier" gorm:"index;not null"`
	Answer               string    `json:"answer"`
	IsCorrect            bool      `json:"is_correct" gorm:"default:false"`
	PointsObtained       *float64  `json:"points_obtained"`
	Timestamp            time.Time `json:"timestamp"`
	IsDeleted            bool      `gorm:"default:false"`
}
