package providers

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/id01t/bookforge/internal/normalize"
)

// OfflineName is the registry name of the deterministic offline provider.
const OfflineName = "offline"

// wordFloorFirst and wordFloorLater are the generic-filler word-count
// targets for the first and subsequent chapters.
const (
	wordFloorFirst = 700
	wordFloorLater = 900
)

// ChapterWriter is implemented by providers that build a chapter directly
// from its title and topic, without a rendered prompt. The assembler uses it
// to bypass prompt templating for the offline path.
type ChapterWriter interface {
	Chapter(topic, title string, index int) string
}

// Offline generates chapters from the built-in knowledge table. It never
// touches the network and completes synchronously.
type Offline struct {
	rng *rand.Rand
}

// NewOffline creates the offline provider. A nil rng selects a time-seeded
// source; tests inject a fixed seed to make sampling reproducible.
func NewOffline(rng *rand.Rand) *Offline {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Offline{rng: rng}
}

func (o *Offline) Name() string  { return OfflineName }
func (o *Offline) Model() string { return "builtin" }

// Generate treats the prompt as a topic key and produces one standalone
// section for it. It is the single-section entry point: output is always
// built as an opening section, at the opening word floor for unknown topics.
// Multi-chapter runs go through Chapter, which carries the real index.
// It never fails.
func (o *Offline) Generate(_ context.Context, req Request) (string, error) {
	return o.Chapter(req.Prompt, req.Prompt, 1), nil
}

// Stream delegates to Generate and delivers the result as one fragment.
func (o *Offline) Stream(ctx context.Context, req Request, onDelta DeltaFunc) (string, error) {
	text, err := o.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	if onDelta != nil {
		onDelta(text)
	}
	return text, nil
}

// Chapter builds one chapter section. Known topics are assembled from
// sampled knowledge-table candidates; unknown topics fall back to generic
// filler paragraphs until the chapter meets its word-count floor.
func (o *Offline) Chapter(topic, title string, index int) string {
	td, ok := knowledgeTable[topic]
	if !ok {
		return o.fillerChapter(title, index)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %d. %s\n\n", index, title)
	b.WriteString(o.pick(td.Introductions))
	b.WriteString("\n\n")
	for _, concept := range o.sample(td.CoreConcepts, 3) {
		b.WriteString(concept)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "**Example:** %s\n\n", o.pick(td.Examples))
	b.WriteString("### Exercises\n\n")
	for _, exercise := range o.sample(td.Exercises, 2) {
		fmt.Fprintf(&b, "1. %s\n", exercise)
	}
	b.WriteString("\n### Key Takeaways\n\n")
	b.WriteString(o.pick(td.Takeaways))

	return normalize.Clean(b.String())
}

// fillerChapter concatenates padding paragraphs until the word floor is met.
func (o *Offline) fillerChapter(title string, index int) string {
	floor := wordFloorLater
	if index <= 1 {
		floor = wordFloorFirst
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %d. %s\n\n", index, title)
	words := 0
	for i := 0; words < floor; i++ {
		para := fillerParagraphs[i%len(fillerParagraphs)]
		b.WriteString(para)
		b.WriteString("\n\n")
		words += len(strings.Fields(para))
	}
	return normalize.Clean(b.String())
}

func (o *Offline) pick(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[o.rng.Intn(len(candidates))]
}

// sample returns up to k distinct candidates in random order.
func (o *Offline) sample(candidates []string, k int) []string {
	if k > len(candidates) {
		k = len(candidates)
	}
	perm := o.rng.Perm(len(candidates))
	out := make([]string, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, candidates[idx])
	}
	return out
}
