package middleware

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

// logCapture is a concurrency-safe sink for emitted log lines.
type logCapture struct {
	mu    sync.Mutex
	lines []string
}

func (lc *logCapture) emit(line string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.lines = append(lc.lines, line)
}

func (lc *logCapture) all() []string {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return append([]string(nil), lc.lines...)
}

// parseLogLine extracts path, duration and status from a request log line.
func parseLogLine(t *testing.T, line string) (string, float64, int) {
	t.Helper()
	var path string
	var durationMs float64
	var status int
	if _, err := fmt.Sscanf(line, "[LOG] Path: %s | Execution Time: %fms | Status: %d",
		&path, &durationMs, &status); err != nil {
		t.Fatalf("log line %q does not match the expected format: %v", line, err)
	}
	return path, durationMs, status
}

func newTestApp(capture *logCapture, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(requestLogger(nil, capture.emit, capture.emit))
	app.Get("/ping", handler)
	app.Get("/slow/:ms", handler)
	return app
}

func TestRequestLogger_Format(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		duration float64
		status   int
		want     string
	}{
		{"RoundedDown", "/summaries", 12.344, 200, "[LOG] Path: /summaries | Execution Time: 12.34ms | Status: 200"},
		{"RoundedUp", "/summaries", 12.346, 422, "[LOG] Path: /summaries | Execution Time: 12.35ms | Status: 422"},
		{"Zero", "/", 0, 404, "[LOG] Path: / | Execution Time: 0.00ms | Status: 404"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLogLine(tt.path, tt.duration, tt.status); got != tt.want {
				t.Errorf("formatLogLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestLogger_PassesResponseThrough(t *testing.T) {
	capture := &logCapture{}
	app := newTestApp(capture, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).SendString("created body")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusCreated {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "created body" {
		t.Errorf("body = %q, want %q", string(body), "created body")
	}

	lines := capture.all()
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1", len(lines))
	}
	path, durationMs, status := parseLogLine(t, lines[0])
	if path != "/ping" {
		t.Errorf("logged path = %q, want /ping", path)
	}
	if durationMs < 0 {
		t.Errorf("logged duration = %f, want >= 0", durationMs)
	}
	if status != fiber.StatusCreated {
		t.Errorf("logged status = %d, want %d", status, fiber.StatusCreated)
	}
}

func TestRequestLogger_MeasuresHandlerDelay(t *testing.T) {
	capture := &logCapture{}
	delay := 50 * time.Millisecond
	app := newTestApp(capture, func(c *fiber.Ctx) error {
		time.Sleep(delay)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), -1)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	resp.Body.Close()

	lines := capture.all()
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1", len(lines))
	}
	_, durationMs, _ := parseLogLine(t, lines[0])
	if durationMs < float64(delay/time.Millisecond) {
		t.Errorf("logged duration = %.2fms, want >= %dms", durationMs, delay/time.Millisecond)
	}
}

func TestRequestLogger_LogsAndPropagatesErrors(t *testing.T) {
	capture := &logCapture{}
	app := newTestApp(capture, func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "downstream failure")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != fiber.StatusTeapot {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusTeapot)
	}

	lines := capture.all()
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "Status: 418") {
		t.Errorf("log line %q missing mapped error status", lines[0])
	}
	if !strings.Contains(lines[0], "Error: downstream failure") {
		t.Errorf("log line %q missing error tag", lines[0])
	}
}

func TestRequestLogger_ConcurrentRequestsAreIsolated(t *testing.T) {
	capture := &logCapture{}
	app := newTestApp(capture, func(c *fiber.Ctx) error {
		ms, err := strconv.Atoi(c.Params("ms"))
		if err != nil {
			return fiber.ErrBadRequest
		}
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return c.SendStatus(fiber.StatusOK)
	})

	var wg sync.WaitGroup
	for _, ms := range []int{10, 120} {
		wg.Add(1)
		go func(ms int) {
			defer wg.Done()
			resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/slow/%d", ms), nil), -1)
			if err != nil {
				t.Errorf("app.Test returned error: %v", err)
				return
			}
			resp.Body.Close()
		}(ms)
	}
	wg.Wait()

	lines := capture.all()
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2", len(lines))
	}

	durations := map[string]float64{}
	for _, line := range lines {
		path, durationMs, _ := parseLogLine(t, line)
		durations[path] = durationMs
	}

	fast, ok := durations["/slow/10"]
	if !ok {
		t.Fatal("missing log line for /slow/10")
	}
	slow, ok := durations["/slow/120"]
	if !ok {
		t.Fatal("missing log line for /slow/120")
	}

	// The fast request ran while the slow one was still in flight; its
	// timing must not absorb the slow handler's delay.
	if fast >= 120 {
		t.Errorf("fast request duration = %.2fms, should not include the slow handler's delay", fast)
	}
	if slow < 120 {
		t.Errorf("slow request duration = %.2fms, want >= 120ms", slow)
	}
}
