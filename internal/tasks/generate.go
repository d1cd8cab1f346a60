package tasks

import (
	"context"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/id01t/bookforge/internal/entities"
	"github.com/id01t/bookforge/internal/exporters"
	"github.com/id01t/bookforge/internal/services"
)

// GenerateBookTask assembles a whole manuscript in the background and writes
// the export file when it finishes.
type GenerateBookTask struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	Description     string `json:"description,omitempty"`
	TableOfContents string `json:"table_of_contents"`
	Topic           string `json:"topic,omitempty"`
	Provider        string `json:"provider,omitempty"`
	Model           string `json:"model,omitempty"`
}

// Config returns the queue configuration for generation tasks. Generation is
// never retried automatically; a failed run keeps its task data so the
// partial state can be inspected.
func (t GenerateBookTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "generate_book",
		MaxAttempts: 1,
		Timeout:     30 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// GenerateBookProcessor creates a processor function for GenerateBookTask.
func GenerateBookProcessor(generator *services.Generator, exporter *exporters.ManuscriptExporter) backlite.QueueProcessor[GenerateBookTask] {
	return func(ctx context.Context, task GenerateBookTask) error {
		meta := entities.BookMetadata{
			Title:           task.Title,
			Subtitle:        task.Subtitle,
			Description:     task.Description,
			TableOfContents: task.TableOfContents,
			Topic:           task.Topic,
		}

		outcome, err := generator.Generate(ctx, services.GenerateRequest{
			Meta:     meta,
			Provider: task.Provider,
			Model:    task.Model,
		})
		if err != nil {
			log.Printf("[TASK] Generation of %q failed: %v", task.Title, err)
			return err
		}

		path, err := exporter.Export(meta, outcome.Result, outcome.Provider)
		if err != nil {
			log.Printf("[TASK] Export of %q failed: %v", task.Title, err)
			return err
		}

		log.Printf("[TASK] Generated %q: %d chapters via %s, written to %s",
			task.Title, len(outcome.Result.Chapters), outcome.Provider, path)
		return nil
	}
}

// NewGenerateBookQueue creates a backlite queue for generation tasks.
func NewGenerateBookQueue(generator *services.Generator, exporter *exporters.ManuscriptExporter) backlite.Queue {
	return backlite.NewQueue(GenerateBookProcessor(generator, exporter))
}
