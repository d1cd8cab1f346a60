package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sseChunk(text string) string {
	return fmt.Sprintf("data: {\"type\":\"content_block_delta\",\"delta\":{\"text\":%q}}\n\n", text)
}

func TestAnthropicStream(t *testing.T) {
	t.Run("forwards content deltas and returns accumulated text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/messages", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
			assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

			w.Header().Set("Content-Type", "text/event-stream")
			fmt.Fprint(w, "data: {\"type\":\"message_start\"}\n\n")
			fmt.Fprint(w, sseChunk("Hello "))
			fmt.Fprint(w, sseChunk("world"))
			fmt.Fprint(w, "data: {\"type\":\"message_stop\"}\n\n")
		}))
		defer server.Close()

		p := NewAnthropic(server.URL, "test-key", "claude-3-5-sonnet-20240620")

		var fragments []string
		text, err := p.Stream(context.Background(), Request{Prompt: "hi"}, func(s string) {
			fragments = append(fragments, s)
		})
		require.NoError(t, err)
		assert.Equal(t, "Hello world", text)
		assert.Equal(t, []string{"Hello ", "world"}, fragments)
	})

	t.Run("stream end without message_stop still completes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, sseChunk("partial"))
		}))
		defer server.Close()

		p := NewAnthropic(server.URL, "test-key", "claude-3-5-sonnet-20240620")
		text, err := p.Stream(context.Background(), Request{Prompt: "hi"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "partial", text)
	})

	t.Run("non-success status yields a ProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
		}))
		defer server.Close()

		p := NewAnthropic(server.URL, "bad-key", "claude-3-5-sonnet-20240620")
		_, err := p.Stream(context.Background(), Request{Prompt: "hi"}, nil)

		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, http.StatusUnauthorized, provErr.StatusCode)
		assert.Contains(t, provErr.Body, "invalid api key")
	})

	t.Run("missing key fails fast", func(t *testing.T) {
		p := NewAnthropic("", "", "claude-3-5-sonnet-20240620")
		_, err := p.Stream(context.Background(), Request{Prompt: "hi"}, nil)
		assert.True(t, IsConfigError(err))
	})

	t.Run("cancellation stops fragment delivery", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			flusher := w.(http.Flusher)
			fmt.Fprint(w, sseChunk("first"))
			flusher.Flush()
			<-release
			fmt.Fprint(w, sseChunk("never delivered"))
		}))
		defer server.Close()
		defer close(release)

		ctx, cancel := context.WithCancel(context.Background())
		p := NewAnthropic(server.URL, "test-key", "claude-3-5-sonnet-20240620")

		fragments := make(chan string, 8)
		done := make(chan error, 1)
		go func() {
			_, err := p.Stream(ctx, Request{Prompt: "hi"}, func(s string) {
				fragments <- s
			})
			done <- err
		}()

		// Let the first fragment arrive, then cancel mid-stream.
		select {
		case frag := <-fragments:
			assert.Equal(t, "first", frag)
		case <-time.After(2 * time.Second):
			t.Fatal("first fragment never arrived")
		}
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("stream did not observe cancellation")
		}
		assert.Empty(t, fragments, "no fragments may be delivered after cancellation")
	})
}

func TestAnthropicGenerateBuffersStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sseChunk("a"))
		fmt.Fprint(w, sseChunk("b"))
		fmt.Fprint(w, "data: {\"type\":\"message_stop\"}\n\n")
	}))
	defer server.Close()

	p := NewAnthropic(server.URL, "test-key", "claude-3-5-sonnet-20240620")
	text, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ab", text)
}
