package httpServices

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// SummariesClient is a thin JSON client for a running summaries service.
type SummariesClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client with a fixed 5-second request timeout.
func NewClient(baseURL string) *SummariesClient {
	return &SummariesClient{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: baseURL,
	}
}

// CreateSummary posts the text to /summaries and returns whatever the service
// answered. Non-2xx responses are not errors: the status code and raw body
// come back in the result so callers can report them. An error means the
// round trip itself failed.
func (c *SummariesClient) CreateSummary(text string) (*SummaryResult, error) {
	body, err := json.Marshal(SummaryRequest{Text: text})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+"/summaries", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	result := &SummaryResult{
		StatusCode: resp.StatusCode,
		RawBody:    string(bodyBytes),
	}

	if resp.StatusCode == http.StatusOK {
		var apiResp SummaryResponse
		if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
			return nil, fmt.Errorf("failed to decode summary response: %w", err)
		}
		result.Body = &apiResp
	}

	return result, nil
}

// IsConnectionError reports whether the error means the service could not be
// reached at all, as opposed to a timeout or a decoding problem.
func IsConnectionError(err error) bool {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return false
	}
	return !urlErr.Timeout()
}
