package sessionController

import (
	"caces/database"
	"caces/middleware"
	"caces/models"
	sessionModels "caces/models/session"
	"caces/reports"
	"caces/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// validTransitions lists the allowed status moves. Completed and cancelled
// are terminal.
var validTransitions = map[string][]string{
	sessionModels.StatusPlanned:    {sessionModels.StatusReady, sessionModels.StatusCancelled},
	sessionModels.StatusReady:      {sessionModels.StatusInProgress, sessionModels.StatusPlanned, sessionModels.StatusCancelled},
	sessionModels.StatusInProgress: {sessionModels.StatusCompleted, sessionModels.StatusCancelled},
}

// CreateSession creates an exam session with its participant list
func CreateSession(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSession").(*sessionModels.Session)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.ReferentielID, false).First(&models.Referentiel{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Referentiel not found!", nil)
	}

	reqData.Status = sessionModels.StatusPlanned
	for i := range reqData.Participants {
		if reqData.Participants[i].IdentificationCode == "" {
			reqData.Participants[i].IdentificationCode = strings.ToUpper(uuid.NewString()[:8])
		}
	}

	if err := db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session created successfully!", reqData)
}

// GetAllSessions lists sessions with participants, optionally by status
func GetAllSessions(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var sessions []sessionModels.Session
	if err := db.Preload("Participants", "is_deleted = ?", false).Order("date_session desc").Find(&sessions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sessions!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", sessions)
}

// GetSession fetches one session with participants
func GetSession(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	var sess sessionModels.Session
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).
		Preload("Participants", "is_deleted = ?", false).First(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session fetched successfully!", sess)
}

// UpdateSession edits a session while it is still planned or ready.
// The bloc selection freezes once the session starts.
func UpdateSession(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	db := database.Database.Db

	var sess sessionModels.Session
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	if sess.Status != sessionModels.StatusPlanned && sess.Status != sessionModels.StatusReady {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Session can no longer be edited!", nil)
	}

	var reqData sessionModels.Session
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.NomSession != "" {
		sess.NomSession = reqData.NomSession
	}
	if !reqData.DateSession.IsZero() {
		sess.DateSession = reqData.DateSession
	}
	if reqData.Location != "" {
		sess.Location = reqData.Location
	}
	if reqData.Notes != "" {
		sess.Notes = reqData.Notes
	}
	if reqData.SelectedBlocIDs != "" {
		sess.SelectedBlocIDs = reqData.SelectedBlocIDs
	}
	if reqData.TrainerID != nil {
		sess.TrainerID = reqData.TrainerID
	}

	if err := db.Save(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session updated successfully!", sess)
}

// UpdateSessionStatus moves a session through its lifecycle
func UpdateSessionStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	reqData := new(struct {
		Status string `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var sess sessionModels.Session
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	allowed := false
	for _, next := range validTransitions[sess.Status] {
		if next == reqData.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status transition!", fiber.Map{
			"from": sess.Status,
			"to":   reqData.Status,
		})
	}

	sess.Status = reqData.Status
	if err := db.Save(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update status!", nil)
	}

	if sess.Status == sessionModels.StatusCompleted {
		go notifyTrainerSessionCompleted(sess)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session status updated!", sess)
}

// notifyTrainerSessionCompleted emails the headline numbers to the
// session's trainer once results are final.
func notifyTrainerSessionCompleted(sess sessionModels.Session) {
	if sess.TrainerID == nil {
		return
	}

	db := database.Database.Db

	var trainer models.Trainer
	if err := db.Where("id = ? AND is_deleted = ?", *sess.TrainerID, false).First(&trainer).Error; err != nil || trainer.Email == "" {
		return
	}

	var results []sessionModels.SessionResult
	var questions []models.Question
	var themes []models.Theme
	var blocs []models.Bloc
	var devices []models.VotingDevice
	db.Where("session_id = ? AND is_deleted = ?", sess.ID, false).Find(&results)
	if blocIDs := sess.BlocIDs(); len(blocIDs) > 0 {
		db.Where("bloc_id IN ? AND is_deleted = ?", blocIDs, false).Find(&questions)
	}
	db.Where("is_deleted = ?", false).Find(&themes)
	db.Where("is_deleted = ?", false).Find(&blocs)
	db.Where("is_deleted = ?", false).Find(&devices)

	db.Preload("Participants", "is_deleted = ?", false).First(&sess, sess.ID)

	opts := reports.DefaultOptions()
	var settings models.AdminSettings
	if err := db.First(&settings).Error; err == nil {
		opts.PassThreshold = settings.PassThreshold
		opts.ThemeFloor = settings.ThemeFloor
		opts.StrictEliminatory = settings.StrictEliminatory
	}

	stats := reports.CalculateSessionStats(&sess, results, questions, themes, blocs, reports.BuildDeviceMap(devices), opts)
	utils.SendSessionReportEmail(trainer.Email, trainer.Prenom+" "+trainer.Nom, sess.NomSession, stats.AverageScore, stats.SuccessRate)
}

// AssignDevices maps participants to voting devices for a session
func AssignDevices(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	reqData := new(struct {
		Assignments []struct {
			ParticipantID uint  `json:"participant_id"`
			DeviceID      *uint `json:"device_id"`
		} `json:"assignments"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var sess sessionModels.Session
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	if sess.Status == sessionModels.StatusCompleted || sess.Status == sessionModels.StatusCancelled {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Session is closed!", nil)
	}

	tx := db.Begin()
	for _, a := range reqData.Assignments {
		if a.DeviceID != nil {
			if err := tx.Where("id = ? AND is_deleted = ?", *a.DeviceID, false).First(&models.VotingDevice{}).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Device not found!", nil)
			}
		}
		result := tx.Model(&sessionModels.Participant{}).
			Where("id = ? AND session_id = ? AND is_deleted = ?", a.ParticipantID, sess.ID, false).
			Update("assigned_global_device_id", a.DeviceID)
		if result.Error != nil || result.RowsAffected == 0 {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Devices assigned successfully!", nil)
}

// DeleteSession soft-deletes a session
func DeleteSession(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	db := database.Database.Db

	var sess sessionModels.Session
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	sess.IsDeleted = true
	if err := db.Save(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session deleted successfully!", nil)
}
