package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/id01t/bookforge/internal/normalize"
)

// GeminiName is the registry name of the Google Gemini provider.
const GeminiName = "gemini"

// DefaultGeminiBase is the hosted generative language endpoint.
const DefaultGeminiBase = "https://generativelanguage.googleapis.com/v1beta"

// Gemini is a buffered provider for the generateContent endpoint.
type Gemini struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewGemini creates a Gemini generateContent client.
func NewGemini(baseURL, apiKey, model string) *Gemini {
	if baseURL == "" {
		baseURL = DefaultGeminiBase
	}
	return &Gemini{
		httpClient: &http.Client{Timeout: 240 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

func (p *Gemini) Name() string  { return GeminiName }
func (p *Gemini) Model() string { return p.model }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate issues one blocking generateContent request.
func (p *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	if p.apiKey == "" {
		return "", &ConfigError{Provider: GeminiName, Reason: "API key is not set"}
	}

	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + prompt
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, p.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", &ProviderError{Provider: GeminiName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		return "", &ProviderError{Provider: GeminiName, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", &ProviderError{Provider: GeminiName, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", &ProviderError{Provider: GeminiName, Err: fmt.Errorf("response contained no candidates")}
	}

	return normalize.Clean(decoded.Candidates[0].Content.Parts[0].Text), nil
}

// Stream delegates to Generate and delivers the response as one fragment.
func (p *Gemini) Stream(ctx context.Context, req Request, onDelta DeltaFunc) (string, error) {
	text, err := p.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	if onDelta != nil {
		onDelta(text)
	}
	return text, nil
}
