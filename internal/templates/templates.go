// Package templates provides the built-in catalog of prompt templates and
// {variable} substitution used to turn user-supplied variables into prompts.
package templates

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in template names.
const (
	ChapterDraft = "Chapter Draft"
	BookOutline  = "Book Outline"
	AdCopy       = "Ad Copy"
)

// builtins is the fixed catalog, populated at process start. Templates are
// not user-editable.
var builtins = map[string]string{
	ChapterDraft: "Write a chapter for a book titled '{title}' about '{topic}'. Audience: {audience}. Tone: {tone}.",
	BookOutline:  "Outline a book titled '{title}' ({subtitle}).",
	AdCopy:       "Write ad copy for '{title}'. Keywords: {keywords}.",
}

// Catalog is a read-only set of named templates.
type Catalog struct {
	templates map[string]string
}

// NewCatalog returns the built-in template catalog.
func NewCatalog() *Catalog {
	return &Catalog{templates: builtins}
}

// Names returns the template names in stable sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the template body for name, or an empty string if unknown.
func (c *Catalog) Get(name string) string {
	return c.templates[name]
}

// Apply substitutes each {name} placeholder in body with the corresponding
// value. Placeholders without a matching variable are left verbatim.
func Apply(body string, vars map[string]string) string {
	for k, v := range vars {
		body = strings.ReplaceAll(body, fmt.Sprintf("{%s}", k), v)
	}
	return body
}
