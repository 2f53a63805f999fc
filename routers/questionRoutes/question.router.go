package questionRoutes

import (
	questionController "caces/controllers/question"
	"caces/middleware"
	questionValidator "caces/validators/question"

	"github.com/gofiber/fiber/v2"
)

// SetupQuestionRoutes sets up question bank routes
func SetupQuestionRoutes(app *fiber.App) {
	questionGroup := app.Group("/questions")

	questionGroup.Get("/", middleware.JWTMiddleware, questionController.GetAllQuestions)
	questionGroup.Get("/:id", middleware.JWTMiddleware, questionController.GetQuestion)
	questionGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), questionValidator.CreateQuestion(), questionController.CreateQuestion)
	questionGroup.Post("/bulk", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), questionController.BulkCreateQuestions)
	questionGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), questionController.UpdateQuestion)
	questionGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), questionController.DeleteQuestion)
}
