// Package providers implements the pluggable content sources that turn a
// prompt into generated text. Every variant, offline or remote, buffered or
// streamed, is exposed through the same Provider interface so the manuscript
// assembler never has to know which transport it is talking to.
package providers

import (
	"context"
	"errors"
	"fmt"
)

// Request describes a single generation call. It is ephemeral and never
// persisted directly; only the resulting history entry is.
type Request struct {
	Prompt      string
	System      string
	Temperature float64
	MaxTokens   int
}

// DeltaFunc receives incremental text fragments from streaming providers.
type DeltaFunc func(text string)

// Provider is any component able to turn a prompt into generated text.
//
// Generate blocks until the full response is available. Stream delivers
// incremental fragments through onDelta and returns the accumulated text once
// the terminal event arrives; buffered transports implement it by delegating
// to Generate and emitting the whole response as a single fragment. Both
// methods return text that has already passed through the normalizer.
//
// Cancellation is cooperative: implementations check ctx between fragments
// and release their transport connection on completion, failure or cancel.
type Provider interface {
	Name() string
	Model() string
	Generate(ctx context.Context, req Request) (string, error)
	Stream(ctx context.Context, req Request, onDelta DeltaFunc) (string, error)
}

// ConfigError reports a missing credential or endpoint detected before any
// network call is attempted. It is never retried.
type ConfigError struct {
	Provider string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

// ProviderError reports a remote call that returned a non-success status or
// an unparseable body, or a transport-level failure.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a provider configuration failure.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
