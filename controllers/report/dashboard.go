package reportController

import (
	"caces/database"
	"caces/middleware"
	"caces/models"
	sessionModels "caces/models/session"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats returns the operational counters for the home screen.
// Completed sessions feed statistics; planned/ready/in-progress only show
// up here for visibility.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalSessions, completedSessions, plannedSessions, readySessions, inProgressSessions int64
	var totalQuestions, totalDevices, totalReferentiels int64

	db.Model(&sessionModels.Session{}).Where("is_deleted = ?", false).Count(&totalSessions)
	db.Model(&sessionModels.Session{}).Where("is_deleted = ? AND status = ?", false, sessionModels.StatusCompleted).Count(&completedSessions)
	db.Model(&sessionModels.Session{}).Where("is_deleted = ? AND status = ?", false, sessionModels.StatusPlanned).Count(&plannedSessions)
	db.Model(&sessionModels.Session{}).Where("is_deleted = ? AND status = ?", false, sessionModels.StatusReady).Count(&readySessions)
	db.Model(&sessionModels.Session{}).Where("is_deleted = ? AND status = ?", false, sessionModels.StatusInProgress).Count(&inProgressSessions)
	db.Model(&models.Question{}).Where("is_deleted = ?", false).Count(&totalQuestions)
	db.Model(&models.VotingDevice{}).Where("is_deleted = ?", false).Count(&totalDevices)
	db.Model(&models.Referentiel{}).Where("is_deleted = ?", false).Count(&totalReferentiels)

	// Get upcoming sessions
	type UpcomingSession struct {
		ID          uint      `json:"id"`
		NomSession  string    `json:"nom_session"`
		DateSession time.Time `json:"date_session"`
		Status      string    `json:"status"`
		Location    string    `json:"location"`
	}

	var upcoming []sessionModels.Session
	db.Where("is_deleted = ? AND status IN ? AND date_session >= ?",
		false,
		[]string{sessionModels.StatusPlanned, sessionModels.StatusReady},
		time.Now().AddDate(0, 0, -1)).
		Order("date_session asc").Limit(5).Find(&upcoming)

	upcomingList := make([]UpcomingSession, len(upcoming))
	for i, s := range upcoming {
		upcomingList[i] = UpcomingSession{
			ID:          s.ID,
			NomSession:  s.NomSession,
			DateSession: s.DateSession,
			Status:      s.Status,
			Location:    s.Location,
		}
	}

	// Get recently completed sessions
	var recent []sessionModels.Session
	db.Where("is_deleted = ? AND status = ?", false, sessionModels.StatusCompleted).
		Order("date_session desc").Limit(5).Find(&recent)

	recentList := make([]UpcomingSession, len(recent))
	for i, s := range recent {
		recentList[i] = UpcomingSession{
			ID:          s.ID,
			NomSession:  s.NomSession,
			DateSession: s.DateSession,
			Status:      s.Status,
			Location:    s.Location,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_sessions":       totalSessions,
			"completed_sessions":   completedSessions,
			"planned_sessions":     plannedSessions,
			"ready_sessions":       readySessions,
			"in_progress_sessions": inProgressSessions,
			"total_questions":      totalQuestions,
			"total_devices":        totalDevices,
			"total_referentiels":   totalReferentiels,
		},
		"upcoming_sessions": upcomingList,
		"recent_sessions":   recentList,
	})
}
