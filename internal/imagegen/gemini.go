package imagegen

// gemini.go is a REST API client for Gemini image generation. It calls the
// generateContent endpoint directly with image response modalities and
// decodes the inline image data from the first candidate.

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// defaultBaseURL is the Gemini REST API base URL.
const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultImageModel is the Gemini model used for image generation.
const DefaultImageModel = "gemini-3-pro-image-preview"

// GeminiBackend generates promotional images via the Gemini REST API.
type GeminiBackend struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiBackend creates a backend for the default image model.
func NewGeminiBackend(apiKey string) *GeminiBackend {
	return &GeminiBackend{
		apiKey:  apiKey,
		model:   DefaultImageModel,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // image generation can take 10-30s
		},
	}
}

// --- REST API request/response types ---

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *geminiBlobData `json:"inlineData,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string           `json:"responseModalities,omitempty"`
	ImageConfig        *geminiImageConfig `json:"imageConfig,omitempty"`
}

type geminiImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

type geminiBlobData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64 encoded
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
	Error      *geminiError      `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate requests one image for the prompt. size is a "WxH" string
// mapped to the closest supported aspect ratio; quality "high" requests
// the larger output resolution.
func (c *GeminiBackend) Generate(ctx context.Context, prompt, size, quality string) ([]byte, error) {
	log.Debug().
		Str("model", c.model).
		Str("size", size).
		Str("quality", quality).
		Int("prompt_length", len(prompt)).
		Msg("Starting Gemini image generation")

	req := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
			ImageConfig: &geminiImageConfig{
				AspectRatio: aspectRatio(size),
				ImageSize:   imageSize(quality),
			},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	log.Debug().
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Gemini image generation HTTP call completed")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if geminiResp.Error != nil {
		return nil, fmt.Errorf("API error: %s (code: %d)", geminiResp.Error.Message, geminiResp.Error.Code)
	}

	for _, candidate := range geminiResp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil {
				continue
			}
			decoded, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode response image: %w", err)
			}
			log.Debug().
				Int("output_bytes", len(decoded)).
				Str("mime_type", part.InlineData.MIMEType).
				Msg("Gemini image generation completed")
			return decoded, nil
		}
	}

	return nil, fmt.Errorf("no image returned in response")
}

// aspectRatio maps a "WxH" size string to a Gemini aspect ratio.
func aspectRatio(size string) string {
	w, h, ok := strings.Cut(size, "x")
	if ok && w != h {
		if len(w) > len(h) || (len(w) == len(h) && w > h) {
			return "16:9"
		}
		return "9:16"
	}
	return "1:1"
}

// imageSize maps the requested quality to an output resolution tier.
func imageSize(quality string) string {
	if strings.EqualFold(quality, "high") {
		return "2K"
	}
	return "1K"
}

// truncate shortens s for error messages and logs.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
