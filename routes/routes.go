package routes

import (
	"summary-api/controllers/logs"
	summaryController "summary-api/controllers/summary"
	"summary-api/logger"
	"summary-api/middleware"
	summaryService "summary-api/services/summary"
	"summary-api/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires controllers and middleware onto the app. A nil db
// disables request-log persistence; the timing middleware still logs to the
// console.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	var asyncLogger *logger.AsyncLogger
	if db != nil {
		asyncLogger = logger.NewAsyncLogger(db)
		go asyncLogger.ProcessLog()
	}

	app.Use(middleware.RequestLogger(asyncLogger))

	service := summaryService.NewSummaryService()
	summariesController := summaryController.NewSummaryController(service)
	logsController := logs.NewLogsController(db)

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "Summary API is running",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	app.Post("/summaries", summariesController.Store)
	app.Post("/summaries/ai", summariesController.StoreAI)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	api := app.Group("/api").Use(middleware.RequireServiceToken())
	api.Get("/logs", logsController.Index)
}
