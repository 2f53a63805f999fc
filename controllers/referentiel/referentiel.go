package referentielController

import (
	"caces/database"
	"caces/middleware"
	"caces/models"

	"github.com/gofiber/fiber/v2"
)

// CreateReferentiel creates a certification scheme
func CreateReferentiel(c *fiber.Ctx) error {
	var reqData models.Referentiel
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("code = ? AND is_deleted = ?", reqData.Code, false).First(&models.Referentiel{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Referentiel code already exists!", nil)
	}

	if err := db.Create(&reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create referentiel!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Referentiel created successfully!", reqData)
}

// GetAllReferentiels lists every certification scheme
func GetAllReferentiels(c *fiber.Ctx) error {
	var referentiels []models.Referentiel
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("code asc").Find(&referentiels).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch referentiels!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Referentiels fetched successfully!", referentiels)
}

// UpdateReferentiel updates code/name
func UpdateReferentiel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid referentiel ID!", nil)
	}

	db := database.Database.Db

	var referentiel models.Referentiel
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&referentiel).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Referentiel not found!", nil)
	}

	var reqData models.Referentiel
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Code != "" {
		referentiel.Code = reqData.Code
	}
	if reqData.NomComplet != "" {
		referentiel.NomComplet = reqData.NomComplet
	}

	if err := db.Save(&referentiel).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update referentiel!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Referentiel updated successfully!", referentiel)
}

// DeleteReferentiel soft-deletes a referentiel
func DeleteReferentiel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid referentiel ID!", nil)
	}

	db := database.Database.Db

	var referentiel models.Referentiel
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&referentiel).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Referentiel not found!", nil)
	}

	referentiel.IsDeleted = true
	if err := db.Save(&referentiel).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete referentiel!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Referentiel deleted successfully!", nil)
}

// CreateTheme creates a theme under a referentiel
func CreateTheme(c *fiber.Ctx) error {
	var reqData models.Theme
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.ReferentielID, false).First(&models.Referentiel{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Referentiel not found!", nil)
	}

	if err := db.Create(&reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create theme!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Theme created successfully!", reqData)
}

// GetAllThemes lists themes, optionally filtered by referentiel
func GetAllThemes(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if refID := c.QueryInt("referentiel_id"); refID > 0 {
		db = db.Where("referentiel_id = ?", refID)
	}

	var themes []models.Theme
	if err := db.Order("code_theme asc").Find(&themes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch themes!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Themes fetched successfully!", themes)
}

// DeleteTheme soft-deletes a theme
func DeleteTheme(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid theme ID!", nil)
	}

	db := database.Database.Db

	var theme models.Theme
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&theme).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Theme not found!", nil)
	}

	theme.IsDeleted = true
	if err := db.Save(&theme).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete theme!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Theme deleted successfully!", nil)
}

// CreateBloc creates a bloc under a theme
func CreateBloc(c *fiber.Ctx) error {
	var reqData models.Bloc
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.ThemeID, false).First(&models.Theme{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Theme not found!", nil)
	}

	if err := db.Create(&reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create bloc!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Bloc created successfully!", reqData)
}

// GetAllBlocs lists blocs, optionally filtered by theme
func GetAllBlocs(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if themeID := c.QueryInt("theme_id"); themeID > 0 {
		db = db.Where("theme_id = ?", themeID)
	}

	var blocs []models.Bloc
	if err := db.Order("code_bloc asc").Find(&blocs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blocs!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blocs fetched successfully!", blocs)
}

// DeleteBloc soft-deletes a bloc
func DeleteBloc(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid bloc ID!", nil)
	}

	db := database.Database.Db

	var bloc models.Bloc
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&bloc).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bloc not found!", nil)
	}

	bloc.IsDeleted = true
	if err := db.Save(&bloc).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete bloc!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bloc deleted successfully!", nil)
}
