package authRoutes

import (
	authController "caces/controllers/auth"
	"caces/middleware"
	authValidator "caces/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	// Only an admin can create accounts
	authGroup.Post("/signup", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
