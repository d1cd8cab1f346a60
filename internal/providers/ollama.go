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

// OllamaName is the registry name of the local Ollama provider.
const OllamaName = "ollama"

// DefaultOllamaBase is the default local Ollama server address.
const DefaultOllamaBase = "http://127.0.0.1:11434"

// Ollama is a buffered provider for a local Ollama server. Keyless by design.
type Ollama struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

// NewOllama creates a client for a local Ollama server.
func NewOllama(baseURL, model string) *Ollama {
	if baseURL == "" {
		baseURL = DefaultOllamaBase
	}
	return &Ollama{
		httpClient: &http.Client{Timeout: 300 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
	}
}

func (p *Ollama) Name() string  { return OllamaName }
func (p *Ollama) Model() string { return p.model }

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// Generate issues one blocking request to the local server.
func (p *Ollama) Generate(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(ollamaRequest{
		Model:  p.model,
		Prompt: req.Prompt,
		System: req.System,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := p.baseURL + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", &ProviderError{Provider: OllamaName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		return "", &ProviderError{Provider: OllamaName, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var decoded ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", &ProviderError{Provider: OllamaName, Err: fmt.Errorf("decode response: %w", err)}
	}

	return normalize.Clean(decoded.Response), nil
}

// Stream delegates to Generate and delivers the response as one fragment.
func (p *Ollama) Stream(ctx context.Context, req Request, onDelta DeltaFunc) (string, error) {
	text, err := p.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	if onDelta != nil {
		onDelta(text)
	}
	return text, nil
}
