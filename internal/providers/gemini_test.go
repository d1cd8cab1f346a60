package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiGenerate(t *testing.T) {
	t.Run("extracts the first candidate part", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"generated text"}]}}]}`))
		}))
		defer server.Close()

		p := NewGemini(server.URL, "test-key", "gemini-1.5-flash")
		text, err := p.Generate(context.Background(), Request{Prompt: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "generated text", text)
	})

	t.Run("missing key fails fast", func(t *testing.T) {
		p := NewGemini("", "", "gemini-1.5-flash")
		_, err := p.Generate(context.Background(), Request{Prompt: "hello"})
		assert.True(t, IsConfigError(err))
	})

	t.Run("empty candidates yields a ProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		p := NewGemini(server.URL, "test-key", "gemini-1.5-flash")
		_, err := p.Generate(context.Background(), Request{Prompt: "hello"})

		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
	})

	t.Run("non-success status yields a ProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"invalid request"}}`))
		}))
		defer server.Close()

		p := NewGemini(server.URL, "test-key", "gemini-1.5-flash")
		_, err := p.Generate(context.Background(), Request{Prompt: "hello"})

		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, http.StatusBadRequest, provErr.StatusCode)
	})
}

func TestOllamaGenerate(t *testing.T) {
	t.Run("extracts the response field without any key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/generate", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			w.Write([]byte(`{"response":"local model output"}`))
		}))
		defer server.Close()

		p := NewOllama(server.URL, "llama3")
		text, err := p.Generate(context.Background(), Request{Prompt: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "local model output", text)
	})

	t.Run("non-success status yields a ProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`model not found`))
		}))
		defer server.Close()

		p := NewOllama(server.URL, "missing-model")
		_, err := p.Generate(context.Background(), Request{Prompt: "hello"})

		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, http.StatusNotFound, provErr.StatusCode)
	})
}
