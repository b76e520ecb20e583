package summary

// SummaryRequest is the body accepted by POST /summaries.
type SummaryRequest struct {
	Text string `json:"text"`
}

// SummaryResponse is the success body returned by POST /summaries.
type SummaryResponse struct {
	Summary   string `json:"summary"`
	WordCount int    `json:"word_count"`
	Timestamp string `json:"timestamp"`
}
