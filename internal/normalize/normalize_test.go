package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "replaces double hyphens with commas",
			input:    "a--b",
			expected: "a,b",
		},
		{
			name:     "replaces em-dashes with commas",
			input:    "a—b",
			expected: "a,b",
		},
		{
			name:     "dash rule from both dash kinds",
			input:    "a--b—c",
			expected: "a,b,c",
		},
		{
			name:     "straightens smart double quotes",
			input:    "“quoted”",
			expected: `"quoted"`,
		},
		{
			name:     "straightens smart single quotes",
			input:    "‘it’s’",
			expected: "'it's'",
		},
		{
			name:     "collapses tabs and carriage returns to a space",
			input:    "a\t\tb\rc",
			expected: "a b c",
		},
		{
			name:     "collapses excess newlines to one blank line",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "collapses runs of spaces",
			input:    "a     b",
			expected: "a b",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "   hello   ",
			expected: "hello",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only input",
			input:    " \t\n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestNormalizeIdempotence(t *testing.T) {
	inputs := []string{
		"a--b—c",
		"“smart” and ‘smarter’",
		"para one\n\n\n\npara two\t\tend",
		"  already clean  ",
		"",
		"# Title\n\n**Subtitle**\n\n> Description\n\n## 1. Chapter",
	}

	for _, input := range inputs {
		once := Clean(input)
		assert.Equal(t, once, Clean(once), "normalize must be idempotent for %q", input)
	}
}

func TestNormalizeOptions(t *testing.T) {
	t.Run("double hyphen rule can be disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.ReplaceDoubleHyphen = false
		assert.Equal(t, "a--b,c", Normalize("a--b—c", opts))
	})

	t.Run("smart quote rule can be disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.SmartQuotes = false
		assert.Equal(t, "“kept”", Normalize("“kept”", opts))
	})

	t.Run("whitespace rule can be disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.NormalizeWhitespace = false
		assert.Equal(t, "a\n\n\n\nb", Normalize(" a\n\n\n\nb ", opts))
	})

	t.Run("all rules disabled leaves only the trim", func(t *testing.T) {
		assert.Equal(t, "a--b—“c”", Normalize("  a--b—“c”  ", Options{}))
	})
}
