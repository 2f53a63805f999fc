package reports

import (
	"time"

	"caces/models"
	sessionModels "caces/models/session"

	"gorm.io/gorm"
)

// Fixture builders shared by the report tests.

func uintPtr(v uint) *uint           { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func mkReferentiel(id uint, code string) models.Referentiel {
	return models.Referentiel{Model: gorm.Model{ID: id}, Code: code, NomComplet: "CACES " + code}
}

func mkTheme(id uint, code string, refID uint) models.Theme {
	return models.Theme{Model: gorm.Model{ID: id}, CodeTheme: code, NomComplet: "Thème " + code, ReferentielID: refID}
}

func mkBloc(id uint, code string, themeID uint) models.Bloc {
	return models.Bloc{Model: gorm.Model{ID: id}, CodeBloc: code, ThemeID: themeID}
}

func mkQuestion(id uint, blocID *uint, correct string, eliminatory bool) models.Question {
	return models.Question{
		Model:         gorm.Model{ID: id},
		Text:          "Q",
		BlocID:        blocID,
		CorrectAnswer: correct,
		IsEliminatory: eliminatory,
	}
}

func mkDevice(id uint, serial string) models.VotingDevice {
	return models.VotingDevice{Model: gorm.Model{ID: id}, SerialNumber: serial}
}

func mkParticipant(deviceID *uint, nom string) sessionModels.Participant {
	return sessionModels.Participant{Nom: nom, AssignedGlobalDeviceID: deviceID}
}

func mkSession(id uint, status string, refID uint, blocIDs []uint, participants ...sessionModels.Participant) sessionModels.Session {
	s := sessionModels.Session{
		Model:         gorm.Model{ID: id},
		NomSession:    "Session",
		DateSession:   time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local),
		Status:        status,
		ReferentielID: refID,
		Participants:  participants,
	}
	s.SetBlocIDs(blocIDs)
	return s
}

func mkResult(sessionID, questionID uint, serial, answer string, correct bool) sessionModels.SessionResult {
	return sessionModels.SessionResult{
		SessionID:            sessionID,
		QuestionID:           questionID,
		ParticipantIDBoitier: serial,
		Answer:               answer,
		IsCorrect:            correct,
	}
}
