package main

import (
	"os"
	"time"

	"summary-api/constants"
	"summary-api/database"
	"summary-api/logger"
	"summary-api/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768,
		WriteBufferSize: 32768,
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       10 * 1024 * 1024,
	})

	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file loaded, using process environment")
	}

	// Request-log persistence is optional; without DB env the server only
	// logs to the console.
	var db *gorm.DB
	if database.Configured() {
		var err error
		db, err = database.InitDB()
		if err != nil {
			logger.Error("Failed to connect to the database", err)
			return
		}
	} else {
		logger.Warning("Database not configured, request logs will not be persisted")
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: os.Getenv("FRONTEND_URL"),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.SetupRoutes(app, db)

	appHost := os.Getenv("APP_HOST")
	if appHost == "" {
		appHost = constants.DefaultAppHost
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = constants.DefaultAppPort
	}

	logger.Success("Server is running on host: " + appHost + " port: " + appPort)
	if err := app.Listen(appHost + ":" + appPort); err != nil {
		logger.Fatal("Server stopped: " + err.Error())
	}
}
