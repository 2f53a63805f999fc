package settingsRoutes

import (
	settingsController "caces/controllers/settings"
	trainerController "caces/controllers/trainer"
	"caces/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupSettingsRoutes sets up admin settings and trainer routes
func SetupSettingsRoutes(app *fiber.App) {
	settingsGroup := app.Group("/settings")
	settingsGroup.Get("/", middleware.JWTMiddleware, settingsController.GetSettings)
	settingsGroup.Put("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), settingsController.UpdateSettings)
	settingsGroup.Post("/backup", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), settingsController.TriggerBackup)

	trainerGroup := app.Group("/trainers")
	trainerGroup.Get("/", middleware.JWTMiddleware, trainerController.GetAllTrainers)
	trainerGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), trainerController.CreateTrainer)
	trainerGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), trainerController.UpdateTrainer)
	trainerGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), trainerController.DeleteTrainer)
}
