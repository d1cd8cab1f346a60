// Package normalize implements the text cleanup pass applied to all text
// entering or leaving the generation pipeline: dash substitution, smart-quote
// replacement and whitespace collapsing.
package normalize

import (
	"regexp"
	"strings"
)

// Options controls which cleanup rules are applied. All rules are
// independent; DefaultOptions enables every one of them.
type Options struct {
	ReplaceDoubleHyphen bool
	ReplaceEmDash       bool
	SmartQuotes         bool
	NormalizeWhitespace bool
}

// DefaultOptions returns the standard all-on rule set.
func DefaultOptions() Options {
	return Options{
		ReplaceDoubleHyphen: true,
		ReplaceEmDash:       true,
		SmartQuotes:         true,
		NormalizeWhitespace: true,
	}
}

var (
	// Tab, carriage return, form feed and vertical tab collapse to a space
	verticalWhitespace = regexp.MustCompile("[\t\r\f\v]+")
	// Three or more newlines collapse to a single blank line
	excessNewlines = regexp.MustCompile("\n{3,}")
	// Runs of horizontal whitespace collapse to one space
	multipleSpaces = regexp.MustCompile("[ \t]{2,}")
)

var smartQuoteReplacer = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
)

// Normalize applies the enabled cleanup rules to s and trims the result.
// It is a pure function, total over all inputs, and idempotent.
func Normalize(s string, opts Options) string {
	if opts.ReplaceDoubleHyphen {
		s = strings.ReplaceAll(s, "--", ",")
	}
	if opts.ReplaceEmDash {
		s = strings.ReplaceAll(s, "—", ",")
	}
	if opts.SmartQuotes {
		s = smartQuoteReplacer.Replace(s)
	}
	if opts.NormalizeWhitespace {
		s = verticalWhitespace.ReplaceAllString(s, " ")
		s = excessNewlines.ReplaceAllString(s, "\n\n")
		s = multipleSpaces.ReplaceAllString(s, " ")
	}
	return strings.TrimSpace(s)
}

// Clean normalizes s with the default rule set.
func Clean(s string) string {
	return Normalize(s, DefaultOptions())
}
