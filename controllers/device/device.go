package deviceController

import (
	"caces/database"
	"caces/middleware"
	"caces/models"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateDevice registers one voting device
func CreateDevice(c *fiber.Ctx) error {
	var reqData models.VotingDevice
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("serial_number = ? AND is_deleted = ?", reqData.SerialNumber, false).First(&models.VotingDevice{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Serial number already registered!", nil)
	}

	if err := db.Create(&reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register device!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Device registered successfully!", reqData)
}

// BulkRegisterKit registers a numbered kit of devices in one go. Devices
// without an explicit serial get a generated one.
func BulkRegisterKit(c *fiber.Ctx) error {
	reqData := new(struct {
		KitName string   `json:"kit_name"`
		Count   int      `json:"count"`
		Serials []string `json:"serials"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	count := reqData.Count
	if count == 0 {
		count = len(reqData.Serials)
	}
	if count <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Kit size must be positive!", nil)
	}

	tx := database.Database.Db.Begin()
	devices := make([]models.VotingDevice, 0, count)
	for i := 0; i < count; i++ {
		serial := ""
		if i < len(reqData.Serials) {
			serial = reqData.Serials[i]
		}
		if serial == "" {
			serial = fmt.Sprintf("KIT-%s", uuid.NewString()[:8])
		}

		device := models.VotingDevice{
			SerialNumber: serial,
			Name:         fmt.Sprintf("%s #%d", reqData.KitName, i+1),
		}
		if err := tx.Create(&device).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Failed to register kit (duplicate serial?)!", nil)
		}
		devices = append(devices, device)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Kit registered successfully!", devices)
}

// GetAllDevices lists registered voting devices
func GetAllDevices(c *fiber.Ctx) error {
	var devices []models.VotingDevice
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("serial_number asc").Find(&devices).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch devices!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Devices fetched successfully!", devices)
}

// UpdateDevice renames a device or replaces its serial number
func UpdateDevice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid device ID!", nil)
	}

	db := database.Database.Db

	var device models.VotingDevice
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&device).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Device not found!", nil)
	}

	var reqData models.VotingDevice
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.SerialNumber != "" && reqData.SerialNumber != device.SerialNumber {
		if err := db.Where("serial_number = ? AND is_deleted = ?", reqData.SerialNumber, false).First(&models.VotingDevice{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Serial number already registered!", nil)
		}
		device.SerialNumber = reqData.SerialNumber
	}
	if reqData.Name != "" {
		device.Name = reqData.Name
	}

	if err := db.Save(&device).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update device!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Device updated successfully!", device)
}

// DeleteDevice soft-deletes a device
func DeleteDevice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid device ID!", nil)
	}

	db := database.Database.Db

	var device models.VotingDevice
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&device).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Device not found!", nil)
	}

	device.IsDeleted = true
	if err := db.Save(&device).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete device!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Device deleted successfully!", nil)
}
