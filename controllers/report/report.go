package reportController

import (
	"caces/database"
	"caces/middleware"
	"caces/models"
	sessionModels "caces/models/session"
	"caces/reports"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadOptions resolves the scoring policy from the admin settings row,
// falling back to the stock defaults.
func loadOptions(db *gorm.DB) reports.Options {
	var settings models.AdminSettings
	if err := db.First(&settings).Error; err != nil {
		return reports.DefaultOptions()
	}
	return reports.Options{
		PassThreshold:     settings.PassThreshold,
		ThemeFloor:        settings.ThemeFloor,
		StrictEliminatory: settings.StrictEliminatory,
	}
}

// snapshot is the full read snapshot a report computation works from.
// Everything is fetched up front; the reports package never touches the DB.
type snapshot struct {
	sessions     []sessionModels.Session
	results      []sessionModels.SessionResult
	questions    []models.Question
	referentiels []models.Referentiel
	themes       []models.Theme
	blocs        []models.Bloc
	devices      map[uint]string
	opts         reports.Options
}

func loadSnapshot(db *gorm.DB) (*snapshot, error) {
	snap := &snapshot{opts: loadOptions(db)}

	if err := db.Where("is_deleted = ?", false).Preload("Participants", "is_deleted = ?", false).Find(&snap.sessions).Error; err != nil {
		return nil, err
	}
	if err := db.Where("is_deleted = ?", false).Find(&snap.results).Error; err != nil {
		return nil, err
	}
	if err := db.Where("is_deleted = ?", false).Find(&snap.questions).Error; err != nil {
		return nil, err
	}
	if err := db.Where("is_deleted = ?", false).Find(&snap.referentiels).Error; err != nil {
		return nil, err
	}
	if err := db.Where("is_deleted = ?", false).Find(&snap.themes).Error; err != nil {
		return nil, err
	}
	if err := db.Where("is_deleted = ?", false).Find(&snap.blocs).Error; err != nil {
		return nil, err
	}

	var devices []models.VotingDevice
	if err := db.Where("is_deleted = ?", false).Find(&devices).Error; err != nil {
		return nil, err
	}
	snap.devices = reports.BuildDeviceMap(devices)
	return snap, nil
}

// GetSessionReport computes one session's full report: per-participant
// scores, theme breakdowns and pass/fail, plus the session rollup.
func GetSessionReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	db := database.Database.Db

	var sess sessionModels.Session
	if err := db.Where("id = ? AND is_deleted = ?", id, false).
		Preload("Participants", "is_deleted = ?", false).First(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	opts := loadOptions(db)

	var results []sessionModels.SessionResult
	if err := db.Where("session_id = ? AND is_deleted = ?", sess.ID, false).Find(&results).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	var questions []models.Question
	if blocIDs := sess.BlocIDs(); len(blocIDs) > 0 {
		if err := db.Where("bloc_id IN ? AND is_deleted = ?", blocIDs, false).Find(&questions).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
		}
	}

	var themes []models.Theme
	var blocs []models.Bloc
	var devices []models.VotingDevice
	db.Where("is_deleted = ?", false).Find(&themes)
	db.Where("is_deleted = ?", false).Find(&blocs)
	db.Where("is_deleted = ?", false).Find(&devices)
	deviceMap := reports.BuildDeviceMap(devices)

	type ParticipantReport struct {
		Nom         string                        `json:"nom"`
		Prenom      string                        `json:"prenom"`
		Serial      string                        `json:"serial"`
		Score       float64                       `json:"score"`
		ThemeScores map[string]reports.ThemeScore `json:"theme_scores"`
		Eliminated  bool                          `json:"eliminated"`
		Success     bool                          `json:"success"`
	}

	participantReports := make([]ParticipantReport, 0, len(sess.Participants))
	for i := range sess.Participants {
		p := &sess.Participants[i]

		serial := ""
		var pResults []sessionModels.SessionResult
		if p.AssignedGlobalDeviceID != nil {
			if s, ok := deviceMap[*p.AssignedGlobalDeviceID]; ok {
				serial = s
				for _, r := range results {
					if r.ParticipantIDBoitier == serial {
						pResults = append(pResults, r)
					}
				}
			}
		}

		score := reports.CalculateParticipantScore(pResults, questions)
		themeScores := reports.CalculateThemeScores(pResults, questions, themes, blocs)
		eliminated := reports.HasEliminatoryFailure(pResults, questions)
		success := reports.DetermineIndividualSuccess(score, themeScores, opts)
		if success && opts.StrictEliminatory && eliminated {
			success = false
		}

		participantReports = append(participantReports, ParticipantReport{
			Nom:         p.Nom,
			Prenom:      p.Prenom,
			Serial:      serial,
			Score:       score,
			ThemeScores: themeScores,
			Eliminated:  eliminated,
			Success:     success,
		})
	}

	stats := reports.CalculateSessionStats(&sess, results, questions, themes, blocs, deviceMap, opts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session report computed successfully!", fiber.Map{
		"session":      sess,
		"stats":        stats,
		"participants": participantReports,
	})
}

// GetBlockStats returns the sorted per-bloc rollup across completed sessions
func GetBlockStats(c *fiber.Ctx) error {
	snap, err := loadSnapshot(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch report data!", nil)
	}

	stats := reports.CalculateAllBlockStats(snap.sessions, snap.results, snap.questions, snap.referentiels, snap.themes, snap.blocs, snap.devices, snap.opts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block statistics computed successfully!", stats)
}

// GetThemeStats returns the per-theme rollup across completed sessions
func GetThemeStats(c *fiber.Ctx) error {
	snap, err := loadSnapshot(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch report data!", nil)
	}

	stats := reports.CalculateOverallThemeStats(snap.sessions, snap.results, snap.questions, snap.referentiels, snap.themes, snap.blocs, snap.devices, snap.opts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Theme statistics computed successfully!", stats)
}

// GetReferentielStats returns the per-referential rollup, optionally
// restricted to an inclusive date range (YYYY-MM-DD query params)
func GetReferentielStats(c *fiber.Ctx) error {
	var startDate, endDate *time.Time
	if raw := c.Query("start_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid start_date (expected YYYY-MM-DD)!", nil)
		}
		startDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid end_date (expected YYYY-MM-DD)!", nil)
		}
		endDate = &t
	}

	snap, err := loadSnapshot(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch report data!", nil)
	}

	stats := reports.CalculateReferentielStats(snap.sessions, snap.results, snap.questions, snap.referentiels, snap.themes, snap.blocs, snap.devices, startDate, endDate, snap.opts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Referentiel statistics computed successfully!", stats)
}

// GetSessionBlockPerformance reports one session's performance on one bloc
func GetSessionBlockPerformance(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}
	blocID, err := c.ParamsInt("blocId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid bloc ID!", nil)
	}

	db := database.Database.Db

	var sess sessionModels.Session
	if err := db.Where("id = ? AND is_deleted = ?", id, false).
		Preload("Participants", "is_deleted = ?", false).First(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	snap, err := loadSnapshot(db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch report data!", nil)
	}

	perf := reports.CalculateNumericBlockPerformanceForSession(uint(blocID), &sess, snap.results, snap.questions, snap.devices, snap.themes, snap.blocs, snap.opts)
	if perf == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bloc not part of this session or taxonomy is broken!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block performance computed successfully!", perf)
}
