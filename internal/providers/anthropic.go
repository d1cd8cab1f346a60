package providers

import (
	"bufio"
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

// AnthropicName is the registry name of the Anthropic streaming provider.
const AnthropicName = "anthropic"

// DefaultAnthropicBase is the hosted Anthropic API endpoint.
const DefaultAnthropicBase = "https://api.anthropic.com"

const anthropicVersion = "2023-06-01"

// Anthropic is a streaming provider reading server-sent events from the
// messages endpoint.
type Anthropic struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewAnthropic creates an Anthropic messages-API client.
func NewAnthropic(baseURL, apiKey, model string) *Anthropic {
	if baseURL == "" {
		baseURL = DefaultAnthropicBase
	}
	return &Anthropic{
		httpClient: &http.Client{Timeout: 240 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

func (p *Anthropic) Name() string  { return AnthropicName }
func (p *Anthropic) Model() string { return p.model }

type anthropicRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	System      string        `json:"system,omitempty"`
	Messages    []chatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
}

// anthropicEvent is the subset of the SSE payload the pipeline cares about:
// content deltas and the terminal event type.
type anthropicEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Text string `json:"text"`
	} `json:"delta"`
}

// Generate runs the stream to completion without a fragment callback.
func (p *Anthropic) Generate(ctx context.Context, req Request) (string, error) {
	return p.Stream(ctx, req, nil)
}

// Stream opens the long-lived connection and forwards each content delta to
// onDelta. Cancellation is checked between events; on cancel the connection
// is closed and no further fragments are delivered.
func (p *Anthropic) Stream(ctx context.Context, req Request, onDelta DeltaFunc) (string, error) {
	if p.apiKey == "" {
		return "", &ConfigError{Provider: AnthropicName, Reason: "API key is not set"}
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2048
	}

	body, err := json.Marshal(anthropicRequest{
		Model:       p.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      req.System,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		Stream:      true,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := p.baseURL + "/v1/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", &ProviderError{Provider: AnthropicName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		return "", &ProviderError{Provider: AnthropicName, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			// Closing the response body tears down the connection.
			return "", err
		}

		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" {
			continue
		}

		var event anthropicEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			continue // unknown frame types are skipped
		}
		switch event.Type {
		case "content_block_delta":
			out.WriteString(event.Delta.Text)
			if onDelta != nil {
				onDelta(event.Delta.Text)
			}
		case "message_stop":
			return normalize.Clean(out.String()), nil
		}
	}
	if err := scanner.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", &ProviderError{Provider: AnthropicName, Err: err}
	}

	// Stream ended without an explicit message_stop; treat EOF as completion.
	return normalize.Clean(out.String()), nil
}
