// Package services holds the generation workflow shared by the HTTP API,
// the task queue and the CLI.
package services

import (
	"context"

	"github.com/id01t/bookforge/internal/config"
	"github.com/id01t/bookforge/internal/entities"
	"github.com/id01t/bookforge/internal/manuscript"
	"github.com/id01t/bookforge/internal/providers"
)

// GenerateRequest describes one manuscript run.
type GenerateRequest struct {
	Meta     entities.BookMetadata
	Provider string // empty uses the configured default
	Model    string // empty uses the provider's configured model
	Progress manuscript.Progress
}

// GenerateOutcome pairs a run result with the provider that produced it.
type GenerateOutcome struct {
	Result   *manuscript.Result
	Provider string
	Model    string
}

// Generator builds providers from configuration and runs the assembler.
type Generator struct {
	cfg          *config.Config
	history      manuscript.Recorder
	session      providers.Session
	sessionModel string
}

func NewGenerator(cfg *config.Config, recorder manuscript.Recorder) *Generator {
	return &Generator{cfg: cfg, history: recorder}
}

// AttachSession wires an interactive renderer session for the bridge
// provider. Headless deployments never call this.
func (g *Generator) AttachSession(session providers.Session, model string) {
	g.session = session
	g.sessionModel = model
}

// Generate runs one manuscript assembly. The outcome always carries the run
// result, including partial documents when err is non-nil.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*GenerateOutcome, error) {
	name := req.Provider
	if name == "" {
		name = g.cfg.Providers.Default
	}

	provider, err := providers.New(name, g.settings(name, req.Model))
	if err != nil {
		return nil, err
	}

	assembler := manuscript.NewAssembler(provider, g.history)
	assembler.Progress = req.Progress

	runCtx := ctx
	if g.cfg.Assembler.RunTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, g.cfg.Assembler.RunTimeout)
		defer cancel()
	}

	result, err := assembler.Run(runCtx, req.Meta)
	outcome := &GenerateOutcome{Result: result, Provider: provider.Name(), Model: provider.Model()}
	return outcome, err
}

func (g *Generator) settings(name, model string) providers.Settings {
	var s providers.Settings
	s.OpenAI.BaseURL = g.cfg.Providers.OpenAI.BaseURL
	s.OpenAI.APIKey = g.cfg.Providers.OpenAI.APIKey
	s.OpenAI.Model = g.cfg.Providers.OpenAI.Model
	s.Anthropic.BaseURL = g.cfg.Providers.Anthropic.BaseURL
	s.Anthropic.APIKey = g.cfg.Providers.Anthropic.APIKey
	s.Anthropic.Model = g.cfg.Providers.Anthropic.Model
	s.Gemini.BaseURL = g.cfg.Providers.Gemini.BaseURL
	s.Gemini.APIKey = g.cfg.Providers.Gemini.APIKey
	s.Gemini.Model = g.cfg.Providers.Gemini.Model
	s.Ollama.BaseURL = g.cfg.Providers.Ollama.BaseURL
	s.Ollama.Model = g.cfg.Providers.Ollama.Model
	s.Session = g.session
	s.SessionModel = g.sessionModel

	if model != "" {
		switch name {
		case providers.OpenAIName:
			s.OpenAI.Model = model
		case providers.AnthropicName:
			s.Anthropic.Model = model
		case providers.GeminiName:
			s.Gemini.Model = model
		case providers.OllamaName:
			s.Ollama.Model = model
		case providers.BridgeName:
			s.SessionModel = model
		}
	}
	return s
}
