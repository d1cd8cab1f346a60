package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory(t *testing.T) {
	settings := Settings{}
	settings.OpenAI.Model = "gpt-4o-mini"
	settings.Anthropic.Model = "claude-3-5-sonnet-20240620"
	settings.Gemini.Model = "gemini-1.5-flash"
	settings.Ollama.Model = "llama3"

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := New(name, settings)
			require.NoError(t, err)
			assert.Equal(t, name, p.Name())
		})
	}

	t.Run("empty name defaults to offline", func(t *testing.T) {
		p, err := New("", settings)
		require.NoError(t, err)
		assert.Equal(t, OfflineName, p.Name())
	})

	t.Run("unknown name is rejected", func(t *testing.T) {
		_, err := New("carrier-pigeon", settings)
		assert.Error(t, err)
	})
}
