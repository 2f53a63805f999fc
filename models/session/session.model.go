package session

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Session statuses. Only completed sessions feed report statistics;
// planned/ready/in-progress only show up in dashboard counters.
const (
	StatusPlanned    = "planned"
	StatusReady      = "ready"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Session is one scheduled or administered exam event against a frozen
// selection of blocs.
type Session struct {
	gorm.Model
	NomSession      string        `json:"nom_session" gorm:"not null"`
	DateSession     time.Time     `json:"date_session" gorm:"index"`
	Status          string        `json:"status" gorm:"default:'planned'"`
	ReferentielID   uint          `json:"referentiel_id" gorm:"index"`
	SelectedBlocIDs string        `json:"selected_bloc_ids"` // JSON array of bloc IDs
	TrainerID       *uint         `json:"trainer_id"`
	Location        string        `json:"location"`
	Notes           string        `json:"notes"`
	Participants    []Participant `json:"participants" gorm:"foreignKey:SessionID"`
	IsDeleted       bool          `gorm:"default:false"`
}

// BlocIDs decodes the frozen bloc selection. A corrupt column yields an
// empty selection rather than an error, matching the report layer's
// graceful-degradation policy.
func (s *Session) BlocIDs() []uint {
	if s.SelectedBlocIDs == "" {
		return nil
	}
	var ids []uint
	if err := json.Unmarshal([]byte(s.SelectedBlocIDs), &ids); err != nil {
		return nil
	}
	return ids
}

// SetBlocIDs encodes the bloc selection into the TEXT column.
func (s *Session) SetBlocIDs(ids []uint) {
	raw, _ := json.Marshal(ids)
	s.SelectedBlocIDs = string(raw)
}

// Participant is an examinee within one session. There is no durable
// identity across sessions: the operational key is the serial number of the
// assigned voting device, resolved through the VotingDevice table.
type Participant struct {
	gorm.Model
	SessionID              uint   `json:"session_id" gorm:"index;not null"`
	Nom                    string `json:"nom" gorm:"not null"`
	Prenom                 string `json:"prenom"`
	IdentificationCode     string `json:"identification_code"`
	AssignedGlobalDeviceID *uint  `json:"assigned_global_device_id"`
	IsDeleted              bool   `gorm:"default:false"`
}
