// Package manuscript assembles full book drafts chapter by chapter.
package manuscript

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/id01t/bookforge/internal/entities"
	"github.com/id01t/bookforge/internal/normalize"
	"github.com/id01t/bookforge/internal/providers"
)

// ChapterError wraps a provider failure with the chapter it happened in.
type ChapterError struct {
	Index int
	Title string
	Err   error
}

func (e *ChapterError) Error() string {
	return fmt.Sprintf("chapter %d (%q): %v", e.Index, e.Title, e.Err)
}

func (e *ChapterError) Unwrap() error {
	return e.Err
}

// Chapter is one completed chapter of a run.
type Chapter struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Result is what a run produced. When Partial is true the document holds the
// preamble plus every chapter that finished before the run stopped.
type Result struct {
	RunID    string    `json:"run_id"`
	Document string    `json:"document"`
	Chapters []Chapter `json:"chapters"`
	Partial  bool      `json:"partial"`
	Warnings []string  `json:"warnings,omitempty"`
}

// Recorder persists a finished chapter. *history.Store satisfies it.
type Recorder interface {
	Record(prompt, output, provider, model string) (uint, error)
}

// Progress receives per-chapter callbacks during a run. Any field may be nil.
type Progress struct {
	OnChapterStart func(index int, title string)
	OnChapterDelta func(index int, delta string)
	OnChapterDone  func(index int, text string)
}

// Assembler generates a manuscript sequentially through a single provider.
// Chapters are strictly ordered: chapter N is recorded to history before
// chapter N+1 starts.
type Assembler struct {
	Provider providers.Provider
	History  Recorder
	Progress Progress

	logger *log.Logger
}

func NewAssembler(provider providers.Provider, recorder Recorder) *Assembler {
	return &Assembler{
		Provider: provider,
		History:  recorder,
		logger:   log.New(log.Writer(), "[assembler] ", log.LstdFlags),
	}
}

// Run assembles the manuscript described by meta. On provider failure or
// cancellation it returns the partial result alongside the error, so callers
// can keep what was already written.
func (a *Assembler) Run(ctx context.Context, meta entities.BookMetadata) (*Result, error) {
	plan := ParsePlan(meta.TableOfContents)
	for _, warning := range plan.Warnings {
		a.logger.Printf("warning: %s", warning)
	}

	result := &Result{
		RunID:    uuid.New().String(),
		Warnings: plan.Warnings,
	}

	var doc strings.Builder
	doc.WriteString(preamble(meta, plan.Chapters))

	for i, title := range plan.Chapters {
		index := i + 1

		if err := ctx.Err(); err != nil {
			result.Partial = true
			result.Document = normalize.Clean(doc.String())
			return result, err
		}

		if a.Progress.OnChapterStart != nil {
			a.Progress.OnChapterStart(index, title)
		}

		text, err := a.writeChapter(ctx, meta, plan.Chapters, index, title)
		if err != nil {
			result.Partial = true
			result.Document = normalize.Clean(doc.String())
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return result, err
			}
			return result, &ChapterError{Index: index, Title: title, Err: err}
		}

		doc.WriteString("\n\n")
		doc.WriteString(text)
		result.Chapters = append(result.Chapters, Chapter{Index: index, Title: title, Text: text})

		if a.Progress.OnChapterDone != nil {
			a.Progress.OnChapterDone(index, text)
		}

		if a.History != nil && a.Provider.Name() != providers.OfflineName {
			prompt := chapterPrompt(meta, plan.Chapters, title)
			if _, err := a.History.Record(prompt, text, a.Provider.Name(), a.Provider.Model()); err != nil {
				a.logger.Printf("failed to record chapter %d: %v", index, err)
			}
		}
	}

	result.Document = normalize.Clean(doc.String())
	return result, nil
}

func (a *Assembler) writeChapter(ctx context.Context, meta entities.BookMetadata, chapters []string, index int, title string) (string, error) {
	// Offline providers build chapters directly from their knowledge table
	// instead of going through a prompt.
	if writer, ok := a.Provider.(providers.ChapterWriter); ok {
		topic := meta.Topic
		if topic == "" {
			topic = meta.Title
		}
		text := writer.Chapter(topic, title, index)
		if a.Progress.OnChapterDelta != nil {
			a.Progress.OnChapterDelta(index, text)
		}
		return text, nil
	}

	req := providers.Request{Prompt: chapterPrompt(meta, chapters, title)}

	var onDelta providers.DeltaFunc
	if a.Progress.OnChapterDelta != nil {
		onDelta = func(delta string) {
			a.Progress.OnChapterDelta(index, delta)
		}
	}
	return a.Provider.Stream(ctx, req, onDelta)
}

func preamble(meta entities.BookMetadata, chapters []string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(meta.Title)
	b.WriteString("\n")
	if meta.Subtitle != "" {
		b.WriteString("\n**")
		b.WriteString(meta.Subtitle)
		b.WriteString("**\n")
	}
	if meta.Description != "" {
		b.WriteString("\n> ")
		b.WriteString(meta.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n### Table of Contents\n\n")
	for i, title := range chapters {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, title))
	}
	return b.String()
}

func chapterPrompt(meta entities.BookMetadata, chapters []string, title string) string {
	var b strings.Builder
	b.WriteString("You are an expert author writing a chapter for a book.\n\n")
	b.WriteString("Book Title: ")
	b.WriteString(meta.Title)
	b.WriteString("\n")
	if meta.Subtitle != "" {
		b.WriteString("Subtitle: ")
		b.WriteString(meta.Subtitle)
		b.WriteString("\n")
	}
	if meta.Description != "" {
		b.WriteString("Description: ")
		b.WriteString(meta.Description)
		b.WriteString("\n")
	}
	b.WriteString("Full ToC:\n")
	for i, chapter := range chapters {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, chapter))
	}
	b.WriteString("\nYou are writing the chapter: \"")
	b.WriteString(title)
	b.WriteString("\".\n\n")
	b.WriteString("Write the full content of this chapter in Markdown, starting with a Level 2 Markdown heading (`## ")
	b.WriteString(title)
	b.WriteString("`). Do not repeat the book title or the table of contents.")
	return b.String()
}
