package models

import "gorm.io/gorm"

// VotingDevice maps a device database ID to its physical serial number.
// Participants and session results link through the serial number string,
// never through the database ID directly.
type VotingDevice struct {
	gorm.Model
	SerialNumber string `json:"serial_number" gorm:"unique;not null"`
	Name         string `json:"name"`
	IsDeleted    bool   `gorm:"default:false"`
}
