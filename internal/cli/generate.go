package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/id01t/bookforge/internal/config"
	"github.com/id01t/bookforge/internal/entities"
	"github.com/id01t/bookforge/internal/exporters"
	"github.com/id01t/bookforge/internal/history"
	"github.com/id01t/bookforge/internal/manuscript"
	"github.com/id01t/bookforge/internal/services"
)

// GenerateCommand assembles a manuscript from the command line.
type GenerateCommand struct {
	Title           string
	Subtitle        string
	Description     string
	TableOfContents string
	Topic           string
	Provider        string
	Model           string
	OutputDir       string
	NoHistory       bool
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand() *GenerateCommand {
	return &GenerateCommand{}
}

// ParseFlags parses command line flags
func (cmd *GenerateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)

	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Subtitle, "subtitle", "", "Book subtitle")
	fs.StringVar(&cmd.Description, "description", "", "Book description")
	fs.StringVar(&cmd.TableOfContents, "toc", "", "Chapter titles, newline or comma separated")
	fs.StringVar(&cmd.Topic, "topic", "", "Offline knowledge topic")
	fs.StringVar(&cmd.Provider, "provider", "", "Content provider (defaults to configured provider)")
	fs.StringVar(&cmd.Model, "model", "", "Model override for the chosen provider")
	fs.StringVar(&cmd.OutputDir, "out", "", "Output directory (defaults to configured export dir)")
	fs.BoolVar(&cmd.NoHistory, "no-history", false, "Skip recording chapters to the history database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s generate [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Assemble a full manuscript and write it as a markdown file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s generate -title 'Field Notes' -toc 'Looking,Listening,Writing'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s generate -title 'Field Notes' -provider anthropic -out ./drafts\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Title == "" {
		fs.Usage()
		return fmt.Errorf("-title is required")
	}

	return nil
}

// Run executes the generate command
func (cmd *GenerateCommand) Run() error {
	cfg := config.NewConfig()

	outputDir := cmd.OutputDir
	if outputDir == "" {
		outputDir = cfg.Export.Dir
	}
	absOutputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}

	var recorder manuscript.Recorder
	if !cmd.NoHistory {
		store, err := history.NewStore(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		defer store.Close()
		recorder = store
	}

	generator := services.NewGenerator(cfg, recorder)

	meta := entities.BookMetadata{
		Title:           cmd.Title,
		Subtitle:        cmd.Subtitle,
		Description:     cmd.Description,
		TableOfContents: cmd.TableOfContents,
		Topic:           cmd.Topic,
	}

	outcome, err := generator.Generate(context.Background(), services.GenerateRequest{
		Meta:     meta,
		Provider: cmd.Provider,
		Model:    cmd.Model,
		Progress: manuscript.Progress{
			OnChapterStart: func(index int, title string) {
				log.Printf("Writing chapter %d: %s", index, title)
			},
			OnChapterDone: func(index int, text string) {
				log.Printf("Finished chapter %d (%d characters)", index, len(text))
			},
		},
	})
	if err != nil {
		if outcome != nil && outcome.Result != nil && outcome.Result.Partial {
			log.Printf("Run stopped after %d chapter(s): %v", len(outcome.Result.Chapters), err)
		}
		return err
	}

	exporter := exporters.NewManuscriptExporter(absOutputDir)
	path, err := exporter.Export(meta, outcome.Result, outcome.Provider)
	if err != nil {
		return fmt.Errorf("failed to write manuscript: %w", err)
	}

	fmt.Printf("Generated %d chapters via %s\n", len(outcome.Result.Chapters), outcome.Provider)
	fmt.Printf("Manuscript written to %s\n", path)
	return nil
}
