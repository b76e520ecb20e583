package logger

import (
	log_model "summary-api/models/log"
	"summary-api/types"

	"gorm.io/gorm"
)

// AsyncLogger decouples request-log persistence from the request path. The
// middleware enqueues entries; a single goroutine drains the channel into
// the database.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

// ProcessLog drains queued entries into the logs table. Run it in its own
// goroutine.
func (logger *AsyncLogger) ProcessLog() {
	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			Method:          logEntry.Method,
			URL:             logEntry.URL,
			RequestBody:     logEntry.RequestBody,
			ResponseBody:    logEntry.ResponseBody,
			RequestHeaders:  logEntry.RequestHeaders,
			ResponseHeaders: logEntry.ResponseHeaders,
			StatusCode:      logEntry.StatusCode,
			DurationMs:      logEntry.DurationMs,
			CreatedAt:       logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			Error("Failed to insert request log entry", err)
		}
	}
}

// Log queues an entry for persistence. Drops the entry rather than blocking
// the request path when the buffer is full.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	select {
	case logger.channel <- entry:
	default:
		Warning("Request log buffer full, dropping entry for " + entry.URL)
	}
}
