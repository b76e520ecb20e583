package summary

import (
	"errors"
	"time"

	"summary-api/logger"
	summaryService "summary-api/services/summary"
	"summary-api/types"
	summaryTypes "summary-api/types/summary"

	"github.com/gofiber/fiber/v2"
)

// Controller handles summarization HTTP requests.
type Controller struct {
	Service *summaryService.Service
}

// NewSummaryController creates a new summary controller.
func NewSummaryController(service *summaryService.Service) *Controller {
	return &Controller{Service: service}
}

// Store handles POST /summaries. The success body is a fixed contract:
// {"summary": string, "word_count": int, "timestamp": string}.
func (sc *Controller) Store(c *fiber.Ctx) error {
	var req summaryTypes.SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse summary request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	summary, wordCount, err := sc.Service.Summarize(req.Text)
	if err != nil {
		if errors.Is(err, summaryService.ErrEmptyText) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
				Status:  fiber.StatusUnprocessableEntity,
				Message: "Field 'text' must not be empty",
			})
		}
		logger.Error("Failed to summarize text", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(summaryTypes.SummaryResponse{
		Summary:   summary,
		WordCount: wordCount,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// StoreAI handles POST /summaries/ai, a Gemini-backed variant of Store.
// Returns 503 when no API key is configured.
func (sc *Controller) StoreAI(c *fiber.Ctx) error {
	var req summaryTypes.SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse summary request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	summary, err := sc.Service.AISummarize(c.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, summaryService.ErrEmptyText):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
				Status:  fiber.StatusUnprocessableEntity,
				Message: "Field 'text' must not be empty",
			})
		case errors.Is(err, summaryService.ErrNoAPIKey):
			return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
				Status:  fiber.StatusServiceUnavailable,
				Message: "AI summarization is not configured",
			})
		default:
			logger.Error("Failed to generate AI summary", err)
			return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
				Status:  fiber.StatusBadGateway,
				Message: "AI summarization failed",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(summaryTypes.SummaryResponse{
		Summary:   summary,
		WordCount: summaryService.WordCount(summary),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
