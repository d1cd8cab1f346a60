package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSession pushes a fixed sequence of events, the way an embedded
// browser page would across the JS bridge.
type scriptedSession struct {
	chunks      []string
	failWith    error
	doubleDone  bool
	gotPrompt   string
	started     chan struct{}
	block       chan struct{} // when non-nil, wait before the terminal event
}

func (s *scriptedSession) Start(prompt string, sink SessionSink) {
	s.gotPrompt = prompt
	if s.started != nil {
		close(s.started)
	}
	for _, chunk := range s.chunks {
		sink.Chunk(chunk)
	}
	if s.block != nil {
		<-s.block
	}
	if s.failWith != nil {
		sink.Fail(s.failWith)
		return
	}
	sink.Done()
	if s.doubleDone {
		sink.Done() // must be ignored
	}
}

// floodSession pushes more chunks than the sink buffers, then signals when
// Start has returned.
type floodSession struct {
	chunks   int
	finished chan struct{}
}

func (s *floodSession) Start(prompt string, sink SessionSink) {
	defer close(s.finished)
	for i := 0; i < s.chunks; i++ {
		sink.Chunk("chunk ")
	}
	sink.Done()
}

func TestBridgeStream(t *testing.T) {
	t.Run("forwards pushed chunks and completes on done", func(t *testing.T) {
		session := &scriptedSession{chunks: []string{"one ", "two ", "three"}}
		p := NewBridge(session, "claude-3.5-sonnet")

		var fragments []string
		text, err := p.Stream(context.Background(), Request{Prompt: "the prompt"}, func(s string) {
			fragments = append(fragments, s)
		})
		require.NoError(t, err)
		assert.Equal(t, "one two three", text)
		assert.Equal(t, []string{"one ", "two ", "three"}, fragments)
		assert.Equal(t, "the prompt", session.gotPrompt)
	})

	t.Run("session error surfaces as a ProviderError", func(t *testing.T) {
		session := &scriptedSession{chunks: []string{"partial"}, failWith: errors.New("page crashed")}
		p := NewBridge(session, "claude-3.5-sonnet")

		_, err := p.Stream(context.Background(), Request{Prompt: "x"}, nil)
		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Contains(t, provErr.Error(), "page crashed")
	})

	t.Run("duplicate terminal events are idempotent", func(t *testing.T) {
		session := &scriptedSession{chunks: []string{"ok"}, doubleDone: true}
		p := NewBridge(session, "claude-3.5-sonnet")

		text, err := p.Stream(context.Background(), Request{Prompt: "x"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "ok", text)
	})

	t.Run("cancellation unblocks a stalled session", func(t *testing.T) {
		session := &scriptedSession{
			chunks:  []string{"first"},
			started: make(chan struct{}),
			block:   make(chan struct{}),
		}
		defer close(session.block)

		p := NewBridge(session, "claude-3.5-sonnet")
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			_, err := p.Stream(ctx, Request{Prompt: "x"}, nil)
			done <- err
		}()

		<-session.started
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("stream did not observe cancellation")
		}
	})

	t.Run("session pushing after cancel is released, not blocked", func(t *testing.T) {
		session := &floodSession{chunks: 100, finished: make(chan struct{})}
		p := NewBridge(session, "claude-3.5-sonnet")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Stream(ctx, Request{Prompt: "x"}, nil)
		assert.ErrorIs(t, err, context.Canceled)

		// The session goroutine must drain past the sink buffer and return.
		select {
		case <-session.finished:
		case <-time.After(2 * time.Second):
			t.Fatal("session goroutine still blocked on the sink after cancel")
		}
	})

	t.Run("missing session is a configuration error", func(t *testing.T) {
		p := NewBridge(nil, "")
		_, err := p.Stream(context.Background(), Request{Prompt: "x"}, nil)
		assert.True(t, IsConfigError(err))
	})
}
