package main

import (
	"caces/config"
	"caces/database"
	authRoutes "caces/routers/authRoutes"
	deviceRoutes "caces/routers/deviceRoutes"
	questionRoutes "caces/routers/questionRoutes"
	referentielRoutes "caces/routers/referentielRoutes"
	reportRoutes "caces/routers/reportRoutes"
	sessionRoutes "caces/routers/sessionRoutes"
	settingsRoutes "caces/routers/settingsRoutes"
	"caces/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Question illustrations and other static assets
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	referentielRoutes.SetupReferentielRoutes(app)
	questionRoutes.SetupQuestionRoutes(app)
	deviceRoutes.SetupDeviceRoutes(app)
	sessionRoutes.SetupSessionRoutes(app)
	reportRoutes.SetupReportRoutes(app)
	settingsRoutes.SetupSettingsRoutes(app)

	utils.InitializeSessionScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
