package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"removes invalid characters", `What? A "Book": Part 1/2`, "What A Book Part 12"},
		{"collapses whitespace", "Too   many\tspaces\nhere", "Too many spaces here"},
		{"trims surrounding space", "  padded  ", "padded"},
		{"empty becomes Untitled", "///", "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases and hyphenates", "Digital Marketing Strategy", "digital-marketing-strategy"},
		{"strips punctuation", "Writing: A Field Guide!", "writing-a-field-guide"},
		{"collapses hyphen runs", "a -- b", "a-b"},
		{"empty becomes untitled", "!!!", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
