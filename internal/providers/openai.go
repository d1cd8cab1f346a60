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

// OpenAIName is the registry name of the OpenAI-compatible provider.
const OpenAIName = "openai"

// DefaultOpenAIBase is the hosted endpoint; any chat-completions compatible
// server (LM Studio, vLLM, llama.cpp server) can be substituted via config.
const DefaultOpenAIBase = "https://api.openai.com/v1"

// OpenAI is a buffered provider speaking the chat-completions wire format.
type OpenAI struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewOpenAI creates an OpenAI-compatible client. The API key may be empty
// only for loopback base URLs (keyless local servers).
func NewOpenAI(baseURL, apiKey, model string) *OpenAI {
	if baseURL == "" {
		baseURL = DefaultOpenAIBase
	}
	return &OpenAI{
		httpClient: &http.Client{Timeout: 240 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

func (p *OpenAI) Name() string  { return OpenAIName }
func (p *OpenAI) Model() string { return p.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func isLoopback(baseURL string) bool {
	return strings.Contains(baseURL, "127.0.0.1") || strings.Contains(baseURL, "localhost")
}

// Generate issues one blocking chat-completions request.
func (p *OpenAI) Generate(ctx context.Context, req Request) (string, error) {
	if p.apiKey == "" && !isLoopback(p.baseURL) {
		return "", &ConfigError{Provider: OpenAIName, Reason: "API key is not set"}
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = 0.4
	}

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body, err := json.Marshal(chatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := p.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", &ProviderError{Provider: OpenAIName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		return "", &ProviderError{Provider: OpenAIName, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", &ProviderError{Provider: OpenAIName, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(completion.Choices) == 0 {
		return "", &ProviderError{Provider: OpenAIName, Err: fmt.Errorf("response contained no choices")}
	}

	return normalize.Clean(completion.Choices[0].Message.Content), nil
}

// Stream delegates to Generate and delivers the response as one fragment.
func (p *OpenAI) Stream(ctx context.Context, req Request, onDelta DeltaFunc) (string, error) {
	text, err := p.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	if onDelta != nil {
		onDelta(text)
	}
	return text, nil
}
