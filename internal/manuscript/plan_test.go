package manuscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlan(t *testing.T) {
	t.Run("splits on newlines", func(t *testing.T) {
		plan := ParsePlan("Getting Started\nGoing Deeper\nWrapping Up")
		assert.Equal(t, []string{"Getting Started", "Going Deeper", "Wrapping Up"}, plan.Chapters)
		assert.Empty(t, plan.Warnings)
	})

	t.Run("splits on commas for single-line input", func(t *testing.T) {
		plan := ParsePlan("One, Two, Three")
		assert.Equal(t, []string{"One", "Two", "Three"}, plan.Chapters)
	})

	t.Run("newlines win over commas", func(t *testing.T) {
		plan := ParsePlan("Intro, the beginning\nMiddle, the journey\nEnd")
		assert.Equal(t, []string{"Intro, the beginning", "Middle, the journey", "End"}, plan.Chapters)
	})

	t.Run("empty input falls back to the default outline", func(t *testing.T) {
		plan := ParsePlan("   ")
		assert.Equal(t, []string{"Introduction", "Chapter 1", "Chapter 2", "Conclusion"}, plan.Chapters)
	})

	t.Run("blank titles are skipped with a warning", func(t *testing.T) {
		plan := ParsePlan("First\n\n  \nSecond")
		assert.Equal(t, []string{"First", "Second"}, plan.Chapters)
		assert.Len(t, plan.Warnings, 2)
	})

	t.Run("only blank titles fall back to the default outline", func(t *testing.T) {
		plan := ParsePlan(",, ,")
		assert.Equal(t, []string{"Introduction", "Chapter 1", "Chapter 2", "Conclusion"}, plan.Chapters)
		assert.NotEmpty(t, plan.Warnings)
	})

	t.Run("duplicate titles are kept", func(t *testing.T) {
		plan := ParsePlan("Notes\nNotes")
		assert.Equal(t, []string{"Notes", "Notes"}, plan.Chapters)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		plan := ParsePlan("  First , Second  ")
		assert.Equal(t, []string{"First", "Second"}, plan.Chapters)
	})
}
