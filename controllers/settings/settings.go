package settingsController

import (
	"caces/database"
	"caces/middleware"
	"caces/models"
	"caces/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSettings returns the single typed settings record
func GetSettings(c *fiber.Ctx) error {
	var settings models.AdminSettings
	if err := database.Database.Db.First(&settings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch settings!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings fetched successfully!", settings)
}

// UpdateSettings updates the scoring policy and defaults. Thresholds are
// percentages and must stay in [0, 100].
func UpdateSettings(c *fiber.Ctx) error {
	db := database.Database.Db

	var settings models.AdminSettings
	if err := db.First(&settings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch settings!", nil)
	}

	reqData := new(struct {
		PassThreshold     *float64 `json:"pass_threshold"`
		ThemeFloor        *float64 `json:"theme_floor"`
		StrictEliminatory *bool    `json:"strict_eliminatory"`
		DefaultKitName    *string  `json:"default_kit_name"`
		ReportFooter      *string  `json:"report_footer"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)
	if reqData.PassThreshold != nil && (*reqData.PassThreshold < 0 || *reqData.PassThreshold > 100) {
		errors["pass_threshold"] = "Pass threshold must be between 0 and 100!"
	}
	if reqData.ThemeFloor != nil && (*reqData.ThemeFloor < 0 || *reqData.ThemeFloor > 100) {
		errors["theme_floor"] = "Theme floor must be between 0 and 100!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	if reqData.PassThreshold != nil {
		settings.PassThreshold = *reqData.PassThreshold
	}
	if reqData.ThemeFloor != nil {
		settings.ThemeFloor = *reqData.ThemeFloor
	}
	if reqData.StrictEliminatory != nil {
		settings.StrictEliminatory = *reqData.StrictEliminatory
	}
	if reqData.DefaultKitName != nil {
		settings.DefaultKitName = *reqData.DefaultKitName
	}
	if reqData.ReportFooter != nil {
		settings.ReportFooter = *reqData.ReportFooter
	}

	if err := db.Save(&settings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings updated successfully!", settings)
}

// TriggerBackup copies the database file on demand
func TriggerBackup(c *fiber.Ctx) error {
	dest, err := utils.BackupDatabase()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Backup failed!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Backup created successfully!", fiber.Map{
		"file": dest,
	})
}
