package logs

import (
	"fmt"
	"strconv"
	"time"

	"summary-api/constants"
	"summary-api/logger"
	log_model "summary-api/models/log"
	"summary-api/types"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Controller serves persisted request logs for inspection.
type Controller struct {
	DB *gorm.DB
}

// NewLogsController creates a new logs controller.
func NewLogsController(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// Index handles GET /api/logs. Optional filters: ?date=YYYY-MM-DD narrows to
// that calendar day, ?status= narrows to a status code. Newest entries first,
// capped at a fixed limit.
func (lc *Controller) Index(c *fiber.Ctx) error {
	if lc.DB == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
			Status:  fiber.StatusServiceUnavailable,
			Message: "Request log persistence is not configured",
		})
	}

	query := lc.DB.Model(&log_model.Log{})

	if date := c.Query("date"); date != "" {
		from, to, err := dayWindow(date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid date, expected YYYY-MM-DD",
			})
		}
		query = query.Where("created_at BETWEEN ? AND ?", from, to)
	}

	if status := c.Query("status"); status != "" {
		statusCode, err := strconv.Atoi(status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid status, expected an integer",
			})
		}
		query = query.Where("status_code = ?", statusCode)
	}

	var entries []log_model.Log
	if err := query.Order("created_at DESC").Limit(constants.DefaultLogQueryLimit).Find(&entries).Error; err != nil {
		logger.Error("Failed to query request logs", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to query request logs",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: fmt.Sprintf("Found %d log entries", len(entries)),
		Data:    entries,
	})
}

// dayWindow resolves a YYYY-MM-DD date to its [beginning, end] of day.
func dayWindow(date string) (time.Time, time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	n := now.With(day)
	return n.BeginningOfDay(), n.EndOfDay(), nil
}
