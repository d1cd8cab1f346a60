// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// The application uses several categories of interfaces:
//
// ## Content Provider Interfaces
//
//   - Provider: Turn a prompt into generated text (internal/providers/provider.go)
//   - ChapterWriter: Build chapters directly from the offline knowledge table
//     (internal/providers/offline.go)
//   - Session / SessionSink: Push-based interactive generation bridge
//     (internal/providers/bridge.go)
//
// ## Persistence Interfaces
//
//   - Recorder: Persist finished chapters (internal/manuscript/assembler.go)
//   - HistoryReader: Read recorded generations (internal/http/config.go)
//
// ## Workflow Interfaces
//
//   - Generator: Run a manuscript assembly end to end (internal/http/config.go)
//
// # Adding a New Content Provider
//
// To add support for a new remote generation backend:
//
//  1. Create the provider in internal/providers/
//
//     type Acme struct {
//         baseURL string
//         apiKey  string
//         model   string
//         client  *http.Client
//     }
//
//     func (a *Acme) Name() string  { return AcmeName }
//     func (a *Acme) Model() string { return a.model }
//     func (a *Acme) Generate(ctx context.Context, req Request) (string, error)
//     func (a *Acme) Stream(ctx context.Context, req Request, onDelta DeltaFunc) (string, error)
//
//  2. Register it in the factory (internal/providers/factory.go) and add its
//     settings block to internal/config.
//
//  3. Add a compile-time check in checks.go.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
