package questionController

import (
	"caces/database"
	"caces/middleware"
	"caces/models"

	"github.com/gofiber/fiber/v2"
)

// CreateQuestion adds one question to the bank
func CreateQuestion(c *fiber.Ctx) error {
	var reqData models.Question
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if reqData.BlocID != nil {
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.BlocID, false).First(&models.Bloc{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bloc not found!", nil)
		}
	}

	if err := db.Create(&reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", reqData)
}

// BulkCreateQuestions adds several questions in one transaction
func BulkCreateQuestions(c *fiber.Ctx) error {
	reqData := new(struct {
		Questions []models.Question `json:"questions"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if len(reqData.Questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No questions supplied!", nil)
	}

	tx := database.Database.Db.Begin()
	for i := range reqData.Questions {
		if err := tx.Create(&reqData.Questions[i]).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create questions!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Questions created successfully!", fiber.Map{
		"created": len(reqData.Questions),
	})
}

// GetAllQuestions lists the question bank, optionally filtered by bloc
func GetAllQuestions(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if blocID := c.QueryInt("bloc_id"); blocID > 0 {
		db = db.Where("bloc_id = ?", blocID)
	}

	var questions []models.Question
	if err := db.Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", questions)
}

// GetQuestion fetches one question
func GetQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question ID!", nil)
	}

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question fetched successfully!", question)
}

// UpdateQuestion updates a question in place
func UpdateQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question ID!", nil)
	}

	db := database.Database.Db

	var question models.Question
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	var reqData models.Question
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Text != "" {
		question.Text = reqData.Text
	}
	if reqData.CorrectAnswer != "" {
		question.CorrectAnswer = reqData.CorrectAnswer
	}
	if reqData.Options != "" {
		question.Options = reqData.Options
	}
	if reqData.TimeLimit > 0 {
		question.TimeLimit = reqData.TimeLimit
	}
	question.IsEliminatory = reqData.IsEliminatory
	question.BlocID = reqData.BlocID
	question.ImagePath = reqData.ImagePath

	if err := db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// DeleteQuestion soft-deletes a question
func DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question ID!", nil)
	}

	db := database.Database.Db

	var question models.Question
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
