package providers

import (
	"context"
	"sync"

	"github.com/id01t/bookforge/internal/normalize"
)

// BridgeName is the registry name of the interactive-session provider.
const BridgeName = "bridge"

// SessionSink receives push events from an externally rendered execution
// context. Chunk may be called any number of times; exactly one terminal
// call (Done or Fail) ends the session. Extra terminal calls are ignored.
type SessionSink interface {
	Chunk(text string)
	Fail(err error)
	Done()
}

// Session is a sandboxed execution context (an embedded browser page, for
// example) that performs the generation call itself and pushes results back
// across the sink. The core hands it a prompt and waits; it never parses the
// session's transport.
type Session interface {
	Start(prompt string, sink SessionSink)
}

// Bridge adapts a push-based Session to the Provider interface.
type Bridge struct {
	session Session
	name    string
	model   string
}

// NewBridge wraps session as a provider. The reported name and model are
// whatever the hosting session represents (e.g. a hosted chat page).
func NewBridge(session Session, model string) *Bridge {
	return &Bridge{session: session, name: BridgeName, model: model}
}

func (p *Bridge) Name() string  { return p.name }
func (p *Bridge) Model() string { return p.model }

// sessionEvent carries one push from the session to the waiting Stream call.
type sessionEvent struct {
	text     string
	err      error
	terminal bool
}

// bridgeSink serializes session callbacks onto a channel and makes the
// terminal signal idempotent. The detached channel is closed once the waiting
// Stream call has returned; sends after that point are dropped so a session
// that keeps pushing never blocks.
type bridgeSink struct {
	events   chan sessionEvent
	detached chan struct{}
	once     sync.Once
}

func (s *bridgeSink) send(ev sessionEvent) {
	select {
	case s.events <- ev:
	case <-s.detached:
	}
}

func (s *bridgeSink) Chunk(text string) {
	s.send(sessionEvent{text: text})
}

func (s *bridgeSink) Fail(err error) {
	s.once.Do(func() {
		s.send(sessionEvent{err: err, terminal: true})
	})
}

func (s *bridgeSink) Done() {
	s.once.Do(func() {
		s.send(sessionEvent{terminal: true})
	})
}

// Generate runs the session to completion without a fragment callback.
func (p *Bridge) Generate(ctx context.Context, req Request) (string, error) {
	return p.Stream(ctx, req, nil)
}

// Stream starts the session and blocks until its single terminal event,
// forwarding each pushed chunk to onDelta. Cancellation is observed between
// chunks; after cancel no further fragments are delivered and any pushes the
// session still makes are discarded rather than blocking its goroutine.
func (p *Bridge) Stream(ctx context.Context, req Request, onDelta DeltaFunc) (string, error) {
	if p.session == nil {
		return "", &ConfigError{Provider: p.name, Reason: "no session attached"}
	}

	sink := &bridgeSink{
		events:   make(chan sessionEvent, 16),
		detached: make(chan struct{}),
	}
	defer close(sink.detached)
	go p.session.Start(req.Prompt, sink)

	var out []byte
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev := <-sink.events:
			if ev.terminal {
				if ev.err != nil {
					return "", &ProviderError{Provider: p.name, Err: ev.err}
				}
				return normalize.Clean(string(out)), nil
			}
			out = append(out, ev.text...)
			if onDelta != nil {
				onDelta(ev.text)
			}
		}
	}
}
