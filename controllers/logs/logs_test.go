package logs

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestDayWindow(t *testing.T) {
	from, to, err := dayWindow("2026-08-29")
	if err != nil {
		t.Fatalf("dayWindow returned error: %v", err)
	}

	if from.Hour() != 0 || from.Minute() != 0 || from.Second() != 0 {
		t.Errorf("window start %v is not beginning of day", from)
	}
	if to.Before(from) {
		t.Errorf("window end %v precedes start %v", to, from)
	}
	if got := to.Sub(from); got < 23*time.Hour || got > 24*time.Hour {
		t.Errorf("window spans %v, want just under 24h", got)
	}
	if from.Format("2006-01-02") != "2026-08-29" {
		t.Errorf("window start date = %s, want 2026-08-29", from.Format("2006-01-02"))
	}
}

func TestDayWindow_InvalidDate(t *testing.T) {
	for _, date := range []string{"29-08-2026", "not-a-date", "2026-13-01"} {
		if _, _, err := dayWindow(date); err == nil {
			t.Errorf("dayWindow(%q) expected error", date)
		}
	}
}

func TestIndex_WithoutDatabase(t *testing.T) {
	app := fiber.New()
	controller := NewLogsController(nil)
	app.Get("/api/logs", controller.Index)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/logs", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}
