package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/id01t/bookforge/internal/history"
	"github.com/id01t/bookforge/internal/http"
	"github.com/id01t/bookforge/internal/manuscript"
	"github.com/id01t/bookforge/internal/providers"
	"github.com/id01t/bookforge/internal/services"
)

// =============================================================================
// Content Providers
// =============================================================================

var _ providers.Provider = (*providers.Offline)(nil)
var _ providers.Provider = (*providers.OpenAI)(nil)
var _ providers.Provider = (*providers.Anthropic)(nil)
var _ providers.Provider = (*providers.Gemini)(nil)
var _ providers.Provider = (*providers.Ollama)(nil)
var _ providers.Provider = (*providers.Bridge)(nil)

// ChapterWriter implementations
var _ providers.ChapterWriter = (*providers.Offline)(nil)

// =============================================================================
// Persistence
// =============================================================================

// Recorder implementations
var _ manuscript.Recorder = (*history.Store)(nil)

// HistoryReader implementations
var _ http.HistoryReader = (*history.Store)(nil)

// =============================================================================
// Generation Workflow
// =============================================================================

// Generator implementations
var _ http.Generator = (*services.Generator)(nil)
