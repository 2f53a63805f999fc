package trainerController

import (
	"caces/database"
	"caces/middleware"
	"caces/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTrainer registers a trainer
func CreateTrainer(c *fiber.Ctx) error {
	var reqData models.Trainer
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Nom == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"nom": "Trainer name is required!"})
	}

	db := database.Database.Db

	// A single default trainer at a time
	if reqData.IsDefault {
		db.Model(&models.Trainer{}).Where("is_default = ?", true).Update("is_default", false)
	}

	if err := db.Create(&reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create trainer!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Trainer created successfully!", reqData)
}

// GetAllTrainers lists trainers
func GetAllTrainers(c *fiber.Ctx) error {
	var trainers []models.Trainer
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("nom asc").Find(&trainers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainers!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainers fetched successfully!", trainers)
}

// UpdateTrainer edits a trainer
func UpdateTrainer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trainer ID!", nil)
	}

	db := database.Database.Db

	var trainer models.Trainer
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	var reqData models.Trainer
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Nom != "" {
		trainer.Nom = reqData.Nom
	}
	if reqData.Prenom != "" {
		trainer.Prenom = reqData.Prenom
	}
	if reqData.Email != "" {
		trainer.Email = reqData.Email
	}
	if reqData.IsDefault && !trainer.IsDefault {
		db.Model(&models.Trainer{}).Where("is_default = ?", true).Update("is_default", false)
		trainer.IsDefault = true
	}

	if err := db.Save(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update trainer!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer updated successfully!", trainer)
}

// DeleteTrainer soft-deletes a trainer
func DeleteTrainer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trainer ID!", nil)
	}

	db := database.Database.Db

	var trainer models.Trainer
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	trainer.IsDeleted = true
	if err := db.Save(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete trainer!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer deleted successfully!", nil)
}
