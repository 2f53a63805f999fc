package sessionController

import (
	"caces/database"
	"caces/middleware"
	"caces/models"
	sessionModels "caces/models/session"
	"time"

	"github.com/gofiber/fiber/v2"
)

// IngestResults stores a batch of answers captured by the voting devices.
// One row per (session, question, boitier serial); a replayed triple
// overwrites the previous answer so a re-vote counts once.
func IngestResults(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	reqData := new(struct {
		Results []struct {
			QuestionID           uint     `json:"question_id"`
			ParticipantIDBoitier string   `json:"participant_id_boitier"`
			Answer               string   `json:"answer"`
			PointsObtained       *float64 `json:"points_obtained"`
		} `json:"results"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if len(reqData.Results) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No results supplied!", nil)
	}

	db := database.Database.Db

	var sess sessionModels.Session
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}
	if sess.Status != sessionModels.StatusInProgress && sess.Status != sessionModels.StatusReady {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Session is not accepting results!", nil)
	}

	tx := db.Begin()
	stored := 0
	for _, r := range reqData.Results {
		var question models.Question
		if err := tx.Where("id = ? AND is_deleted = ?", r.QuestionID, false).First(&question).Error; err != nil {
			// Unknown question: skip the row, keep the batch.
			continue
		}

		result := sessionModels.SessionResult{
			SessionID:            sess.ID,
			QuestionID:           r.QuestionID,
			ParticipantIDBoitier: r.ParticipantIDBoitier,
			Answer:               r.Answer,
			IsCorrect:            r.Answer == question.CorrectAnswer,
			PointsObtained:       r.PointsObtained,
			Timestamp:            time.Now(),
		}

		var existing sessionModels.SessionResult
		err := tx.Where("session_id = ? AND question_id = ? AND participant_id_boitier = ? AND is_deleted = ?",
			sess.ID, r.QuestionID, r.ParticipantIDBoitier, false).First(&existing).Error
		if err == nil {
			result.ID = existing.ID
			result.CreatedAt = existing.CreatedAt
			if err := tx.Save(&result).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store results!", nil)
			}
		} else {
			if err := tx.Create(&result).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store results!", nil)
			}
		}
		stored++
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results stored successfully!", fiber.Map{
		"received": len(reqData.Results),
		"stored":   stored,
	})
}

// GetResultsForSession returns the raw result snapshot for one session
func GetResultsForSession(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	var results []sessionModels.SessionResult
	if err := database.Database.Db.Where("session_id = ? AND is_deleted = ?", id, false).Find(&results).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully!", results)
}

// GetQuestionsForSessionBlocks returns the question set a session's frozen
// bloc selection exposes to its participants
func GetQuestionsForSessionBlocks(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	db := database.Database.Db

	var sess sessionModels.Session
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&sess).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	blocIDs := sess.BlocIDs()
	if len(blocIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", []models.Question{})
	}

	var questions []models.Question
	if err := db.Where("bloc_id IN ? AND is_deleted = ?", blocIDs, false).Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", questions)
}
