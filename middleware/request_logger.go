package middleware

import (
	"errors"
	"fmt"
	"time"

	"summary-api/logger"
	"summary-api/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger returns a middleware that logs path, execution time and
// status code for every request. Timing state is local to the invocation, so
// concurrent requests never affect each other's measurements. When async is
// non-nil the full request/response record is also queued for persistence.
//
// Handler errors are returned unchanged to Fiber's error handler; the request
// is still logged, at error level, with the status the error maps to.
func RequestLogger(async *logger.AsyncLogger) fiber.Handler {
	return requestLogger(async, logger.Request, logger.RequestError)
}

func requestLogger(async *logger.AsyncLogger, emit, emitError func(string)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestPath := c.Path()
		requestBody := string(c.Body())
		requestHeaders := c.Request().Header.String()

		start := time.Now()
		err := c.Next()
		executionTimeMs := float64(time.Since(start)) / float64(time.Millisecond)

		statusCode := c.Response().StatusCode()
		if err != nil {
			statusCode = errorStatusCode(err)
		}

		line := formatLogLine(requestPath, executionTimeMs, statusCode)
		if err != nil {
			emitError(line + " | Error: " + err.Error())
		} else {
			emit(line)
		}

		if async != nil {
			async.Log(types.LogEntry{
				Method:          c.Method(),
				URL:             c.OriginalURL(),
				RequestBody:     requestBody,
				RequestHeaders:  requestHeaders,
				ResponseBody:    string(c.Response().Body()),
				ResponseHeaders: c.Response().Header.String(),
				StatusCode:      statusCode,
				DurationMs:      executionTimeMs,
				CreatedAt:       time.Now(),
			})
		}

		return err
	}
}

// formatLogLine renders the request log record. The format is fixed:
// [LOG] Path: <path> | Execution Time: <ms>ms | Status: <code>
func formatLogLine(path string, executionTimeMs float64, statusCode int) string {
	return fmt.Sprintf("[LOG] Path: %s | Execution Time: %.2fms | Status: %d",
		path, executionTimeMs, statusCode)
}

// errorStatusCode resolves the status Fiber's default error handler will
// answer with, since the response status is not yet rewritten while the
// middleware chain unwinds.
func errorStatusCode(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
