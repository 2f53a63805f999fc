package sessionRoutes

import (
	sessionController "caces/controllers/session"
	"caces/middleware"
	sessionValidator "caces/validators/session"

	"github.com/gofiber/fiber/v2"
)

// SetupSessionRoutes sets up exam session routes
func SetupSessionRoutes(app *fiber.App) {
	sessionGroup := app.Group("/sessions")

	sessionGroup.Get("/", middleware.JWTMiddleware, sessionController.GetAllSessions)
	sessionGroup.Get("/:id", middleware.JWTMiddleware, sessionController.GetSession)
	sessionGroup.Post("/", middleware.JWTMiddleware, sessionValidator.CreateSession(), sessionController.CreateSession)
	sessionGroup.Put("/:id", middleware.JWTMiddleware, sessionController.UpdateSession)
	sessionGroup.Put("/:id/status", middleware.JWTMiddleware, sessionController.UpdateSessionStatus)
	sessionGroup.Put("/:id/devices", middleware.JWTMiddleware, sessionController.AssignDevices)
	sessionGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), sessionController.DeleteSession)

	// Results capture and reads
	sessionGroup.Post("/:id/results", middleware.JWTMiddleware, sessionController.IngestResults)
	sessionGroup.Get("/:id/results", middleware.JWTMiddleware, sessionController.GetResultsForSession)
	sessionGroup.Get("/:id/questions", middleware.JWTMiddleware, sessionController.GetQuestionsForSessionBlocks)
}
