package providers

import (
	"fmt"
	"math/rand"
)

// Settings carries the per-provider configuration threaded in from the
// process configuration. Nothing here is read from ambient global state.
type Settings struct {
	OpenAI struct {
		BaseURL string
		APIKey  string
		Model   string
	}
	Anthropic struct {
		BaseURL string
		APIKey  string
		Model   string
	}
	Gemini struct {
		BaseURL string
		APIKey  string
		Model   string
	}
	Ollama struct {
		BaseURL string
		Model   string
	}

	// OfflineRand, when non-nil, makes offline sampling reproducible.
	OfflineRand *rand.Rand

	// Session backs the bridge provider when an interactive renderer is
	// attached; nil when running headless.
	Session      Session
	SessionModel string
}

// Names lists the providers the factory can construct.
func Names() []string {
	return []string{OfflineName, OpenAIName, AnthropicName, GeminiName, OllamaName, BridgeName}
}

// New constructs the named provider from settings. Credential validation is
// deferred to the first Generate call so that building a provider is cheap
// and side-effect free.
func New(name string, settings Settings) (Provider, error) {
	switch name {
	case OfflineName, "":
		return NewOffline(settings.OfflineRand), nil
	case OpenAIName:
		return NewOpenAI(settings.OpenAI.BaseURL, settings.OpenAI.APIKey, settings.OpenAI.Model), nil
	case AnthropicName:
		return NewAnthropic(settings.Anthropic.BaseURL, settings.Anthropic.APIKey, settings.Anthropic.Model), nil
	case GeminiName:
		return NewGemini(settings.Gemini.BaseURL, settings.Gemini.APIKey, settings.Gemini.Model), nil
	case OllamaName:
		return NewOllama(settings.Ollama.BaseURL, settings.Ollama.Model), nil
	case BridgeName:
		return NewBridge(settings.Session, settings.SessionModel), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
}
