package constants

// SummaryWordLimit is the maximum number of words returned in a summary.
const SummaryWordLimit = 10

// Default listen address, used when APP_HOST / APP_PORT are not set.
const (
	DefaultAppHost = ""
	DefaultAppPort = "8000"
)

// DefaultLogQueryLimit bounds how many request logs a single query returns.
const DefaultLogQueryLimit = 100
