package referentielRoutes

import (
	referentielController "caces/controllers/referentiel"
	"caces/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupReferentielRoutes sets up the taxonomy routes
func SetupReferentielRoutes(app *fiber.App) {
	refGroup := app.Group("/referentiels")
	refGroup.Get("/", middleware.JWTMiddleware, referentielController.GetAllReferentiels)
	refGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), referentielController.CreateReferentiel)
	refGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), referentielController.UpdateReferentiel)
	refGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), referentielController.DeleteReferentiel)

	themeGroup := app.Group("/themes")
	themeGroup.Get("/", middleware.JWTMiddleware, referentielController.GetAllThemes)
	themeGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), referentielController.CreateTheme)
	themeGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), referentielController.DeleteTheme)

	blocGroup := app.Group("/blocs")
	blocGroup.Get("/", middleware.JWTMiddleware, referentielController.GetAllBlocs)
	blocGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), referentielController.CreateBloc)
	blocGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), referentielController.DeleteBloc)
}
