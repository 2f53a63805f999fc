package reportRoutes

import (
	exportController "caces/controllers/export"
	reportController "caces/controllers/report"
	"caces/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupReportRoutes sets up statistics and export routes
func SetupReportRoutes(app *fiber.App) {
	reportGroup := app.Group("/reports")

	reportGroup.Get("/dashboard", middleware.JWTMiddleware, reportController.DashboardStats)
	reportGroup.Get("/sessions/:id", middleware.JWTMiddleware, reportController.GetSessionReport)
	reportGroup.Get("/sessions/:id/blocs/:blocId", middleware.JWTMiddleware, reportController.GetSessionBlockPerformance)
	reportGroup.Get("/blocs", middleware.JWTMiddleware, reportController.GetBlockStats)
	reportGroup.Get("/themes", middleware.JWTMiddleware, reportController.GetThemeStats)
	reportGroup.Get("/referentiels", middleware.JWTMiddleware, reportController.GetReferentielStats)

	exportGroup := app.Group("/export")
	exportGroup.Get("/sessions/:id/csv", middleware.JWTMiddleware, exportController.ExportSessionResultsCSV)
	exportGroup.Get("/sessions/:id/archive", middleware.JWTMiddleware, exportController.ExportSessionArchive)
}
