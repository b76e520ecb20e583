package summary

import (
	"errors"
	"strings"

	"summary-api/constants"
)

// ErrEmptyText is returned when the input contains no summarizable words.
var ErrEmptyText = errors.New("text must not be empty")

// Service produces word-truncation summaries.
type Service struct {
	WordLimit int
}

// NewSummaryService creates a summary service with the default word limit.
func NewSummaryService() *Service {
	return &Service{WordLimit: constants.SummaryWordLimit}
}

// Summarize collapses whitespace, splits the text into words and returns the
// first WordLimit of them joined by single spaces, together with the word
// count of the returned summary. Texts at or under the limit come back whole,
// with their word order preserved.
func (s *Service) Summarize(text string) (string, int, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", 0, ErrEmptyText
	}

	if len(words) > s.WordLimit {
		words = words[:s.WordLimit]
	}

	return strings.Join(words, " "), len(words), nil
}

// WordCount reports how many whitespace-separated words the text contains.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
