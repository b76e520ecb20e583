package httpServices

// SummaryRequest is the JSON body sent to POST /summaries.
type SummaryRequest struct {
	Text string `json:"text"`
}

// SummaryResponse is the JSON body of a successful summary.
type SummaryResponse struct {
	Summary   string `json:"summary"`
	WordCount int    `json:"word_count"`
	Timestamp string `json:"timestamp"`
}

// SummaryResult carries the outcome of one summary call. Body is the parsed
// payload when the call succeeded; RawBody holds the response text otherwise.
type SummaryResult struct {
	StatusCode int
	Body       *SummaryResponse
	RawBody    string
}

// OK reports whether the service answered with 200.
func (r *SummaryResult) OK() bool {
	return r.StatusCode == 200
}
