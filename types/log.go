package types

import "time"

// LogEntry is a request/response record queued for database persistence.
type LogEntry struct {
	Method          string
	URL             string
	RequestBody     string
	ResponseBody    string
	RequestHeaders  string
	ResponseHeaders string
	StatusCode      int
	DurationMs      float64
	CreatedAt       time.Time
}
