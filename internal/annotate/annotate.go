// Package annotate suggests catalog fields for a photographed tool using an
// external image-analysis service. The service is strictly optional: every
// failure mode (no API key, network error, bad response) results in an
// absent suggestion, never an error, so tool creation is never blocked.
package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/toolshare/toolshare-server/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const analysisPrompt = "Analyze this image. If it is a tool, provide a name, " +
	"a brief 1-sentence description, an estimated purchase price in USD, and " +
	"a category (e.g., Power Tools, Hand Tools, Garden). If not a tool, " +
	"return nulls."

// Annotator produces optional field suggestions from an image payload.
type Annotator interface {
	AnalyzeToolImage(ctx context.Context, base64Image string) *models.ToolSuggestion
}

// GeminiAnnotator calls the Gemini generateContent endpoint.
type GeminiAnnotator struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGeminiAnnotator creates an annotator. An empty API key yields a client
// that always reports absence.
func NewGeminiAnnotator(apiKey string) *GeminiAnnotator {
	return &GeminiAnnotator{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NewGeminiAnnotatorWithBaseURL is used by tests to point at a fake server.
func NewGeminiAnnotatorWithBaseURL(apiKey, baseURL string) *GeminiAnnotator {
	a := NewGeminiAnnotator(apiKey)
	a.baseURL = strings.TrimRight(baseURL, "/")
	return a
}

type generateRequest struct {
	Contents []content `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"response_mime_type"`
	} `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeToolImage returns suggested fields for the image, or nil when the
// service is unavailable or the response is unusable.
func (a *GeminiAnnotator) AnalyzeToolImage(ctx context.Context, base64Image string) *models.ToolSuggestion {
	if a.apiKey == "" {
		return nil
	}

	// Strip a data-URL prefix if present.
	if i := strings.Index(base64Image, ","); i >= 0 && strings.HasPrefix(base64Image, "data:") {
		base64Image = base64Image[i+1:]
	}

	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: "image/jpeg", Data: base64Image}},
				{Text: analysisPrompt},
			},
		}},
	}
	reqBody.GenerationConfig.ResponseMimeType = "application/json"

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return nil
	}

	url := fmt.Sprintf("%s/models/gemini-2.5-flash:generateContent?key=%s", a.baseURL, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil
	}

	var suggestion models.ToolSuggestion
	if err := json.Unmarshal([]byte(decoded.Candidates[0].Content.Parts[0].Text), &suggestion); err != nil {
		return nil
	}
	return &suggestion
}
