package summary

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// ErrNoAPIKey is returned when AI summarization is requested but no Gemini
// API key is configured.
var ErrNoAPIKey = fmt.Errorf("GEMINI_API_KEY not found in environment variables")

// AISummarize asks Gemini for a free-form summary of at most WordLimit words.
func (s *Service) AISummarize(ctx context.Context, text string) (string, error) {
	if len(strings.Fields(text)) == 0 {
		return "", ErrEmptyText
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", ErrNoAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	prompt := fmt.Sprintf(
		"Summarize the following text in at most %d words. "+
			"Return ONLY the summary, no preamble and no markdown.\n\n%s",
		s.WordLimit, text)

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		"gemini-2.5-flash-lite",
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.1)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	responseText := result.Candidates[0].Content.Parts[0].Text
	if responseText == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return stripCodeFence(responseText), nil
}

// stripCodeFence removes a surrounding markdown code block, which the model
// occasionally wraps its answer in despite the prompt.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 1 {
		return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
	}
	return strings.TrimSpace(strings.Trim(text, "`"))
}
