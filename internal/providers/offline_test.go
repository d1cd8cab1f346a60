package providers

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededOffline() *Offline {
	return NewOffline(rand.New(rand.NewSource(42)))
}

func TestOfflineKnownTopic(t *testing.T) {
	p := seededOffline()

	chapter := p.Chapter("Digital Marketing Strategy", "Getting Started", 1)

	assert.Contains(t, chapter, "## 1. Getting Started")
	assert.Contains(t, chapter, "**Example:**")
	assert.Contains(t, chapter, "### Exercises")
	assert.Contains(t, chapter, "### Key Takeaways")

	// Sampled sections draw from the knowledge table candidates.
	td := knowledgeTable["Digital Marketing Strategy"]
	foundIntro := false
	for _, intro := range td.Introductions {
		// The intro passes through the normalizer, so compare a stable prefix.
		if strings.Contains(chapter, intro[:40]) {
			foundIntro = true
		}
	}
	assert.True(t, foundIntro, "chapter should contain one of the candidate introductions")
}

func TestOfflineSeededSamplingIsReproducible(t *testing.T) {
	first := NewOffline(rand.New(rand.NewSource(7))).Chapter("Digital Marketing Strategy", "Plans", 2)
	second := NewOffline(rand.New(rand.NewSource(7))).Chapter("Digital Marketing Strategy", "Plans", 2)
	assert.Equal(t, first, second)
}

func TestOfflineUnknownTopicFallsBackToFiller(t *testing.T) {
	p := seededOffline()

	t.Run("first chapter meets the 700 word floor", func(t *testing.T) {
		chapter := p.Chapter("Underwater Basket Weaving", "Introduction", 1)
		assert.Contains(t, chapter, "## 1. Introduction")
		assert.GreaterOrEqual(t, len(strings.Fields(chapter)), wordFloorFirst)
	})

	t.Run("later chapters meet the 900 word floor", func(t *testing.T) {
		chapter := p.Chapter("Underwater Basket Weaving", "Advanced Knots", 3)
		assert.Contains(t, chapter, "## 3. Advanced Knots")
		assert.GreaterOrEqual(t, len(strings.Fields(chapter)), wordFloorLater)
	})
}

func TestOfflineNeverFails(t *testing.T) {
	p := seededOffline()

	text, err := p.Generate(context.Background(), Request{Prompt: "Anything At All"})
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestOfflineGenerateBuildsAnOpeningSection(t *testing.T) {
	p := seededOffline()

	text, err := p.Generate(context.Background(), Request{Prompt: "Quantum Gardening"})
	require.NoError(t, err)

	// The single-section entry point always writes an opening section, so
	// unknown topics fill to the opening word floor rather than the later one.
	assert.Contains(t, text, "## 1. Quantum Gardening")
	words := len(strings.Fields(text))
	assert.GreaterOrEqual(t, words, wordFloorFirst)
}

func TestOfflineStreamDeliversOneFragment(t *testing.T) {
	p := seededOffline()

	var fragments []string
	text, err := p.Stream(context.Background(), Request{Prompt: "Digital Marketing Strategy"}, func(s string) {
		fragments = append(fragments, s)
	})
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	assert.Equal(t, text, fragments[0])
}

func TestKnownTopic(t *testing.T) {
	assert.True(t, KnownTopic("Digital Marketing Strategy"))
	assert.False(t, KnownTopic("Quantum Gardening"))
}
