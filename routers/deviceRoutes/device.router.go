package deviceRoutes

import (
	deviceController "caces/controllers/device"
	"caces/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupDeviceRoutes sets up voting device routes
func SetupDeviceRoutes(app *fiber.App) {
	deviceGroup := app.Group("/devices")

	deviceGroup.Get("/", middleware.JWTMiddleware, deviceController.GetAllDevices)
	deviceGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), deviceController.CreateDevice)
	deviceGroup.Post("/kit", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), deviceController.BulkRegisterKit)
	deviceGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), deviceController.UpdateDevice)
	deviceGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), deviceController.DeleteDevice)
}
