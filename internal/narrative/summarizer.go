package narrative

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// DefaultModelName is the default Gemini model for session summaries.
// Can be overridden via the GEMINI_MODEL environment variable.
const DefaultModelName = "gemini-3-flash-preview"

// GetModelName returns the Gemini model to use, resolved from the
// GEMINI_MODEL environment variable when set.
func GetModelName() string {
	if env := os.Getenv("GEMINI_MODEL"); env != "" {
		return env
	}
	return DefaultModelName
}

// Summarizer produces a natural-language session summary from a rendered
// prompt. Implementations may fail; the composer recovers with its
// deterministic fallback.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// GeminiSummarizer summarizes sessions through the Gemini API.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

// NewGeminiSummarizer wraps an existing Gemini client.
func NewGeminiSummarizer(client *genai.Client) *GeminiSummarizer {
	return &GeminiSummarizer{client: client, model: GetModelName()}
}

// Summarize sends the prompt to Gemini and returns the response text.
func (g *GeminiSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	log.Debug().
		Str("model", g.model).
		Int("prompt_length", len(prompt)).
		Msg("Starting Gemini API call for session summary")

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	duration := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("duration", duration).Msg("Failed to generate summary from Gemini")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("received empty response from Gemini API")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("received empty summary from Gemini API")
	}

	log.Debug().
		Int("response_length", len(text)).
		Dur("duration", duration).
		Msg("Gemini API response received for session summary")

	return text, nil
}
