package types

// ApiResponse is the error/notice envelope used by handlers for non-success
// responses. Successful summary responses use their own fixed contract.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}
