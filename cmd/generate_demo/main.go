// Command generate_demo writes a sample offline manuscript with a fixed seed.
// Usage: go run cmd/generate_demo/main.go [-out path/to/dir]
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"

	"github.com/id01t/bookforge/internal/entities"
	"github.com/id01t/bookforge/internal/exporters"
	"github.com/id01t/bookforge/internal/manuscript"
	"github.com/id01t/bookforge/internal/providers"
)

const defaultDemoDir = "./demo"

func main() {
	outDir := flag.String("out", defaultDemoDir, "directory for the demo manuscript")
	flag.Parse()

	log.Printf("Generating demo manuscript into %s...", *outDir)

	meta := entities.BookMetadata{
		Title:           "Digital Marketing Strategy",
		Subtitle:        "A Practical Playbook",
		Description:     "A sample manuscript assembled entirely offline.",
		Topic:           "Digital Marketing Strategy",
		TableOfContents: "Foundations\nChannels and Content\nMeasurement\nScaling Up",
	}

	// Fixed seed keeps the demo output stable across runs.
	provider := providers.NewOffline(rand.New(rand.NewSource(1)))
	assembler := manuscript.NewAssembler(provider, nil)
	assembler.Progress = manuscript.Progress{
		OnChapterDone: func(index int, text string) {
			log.Printf("Chapter %d done (%d characters)", index, len(text))
		},
	}

	result, err := assembler.Run(context.Background(), meta)
	if err != nil {
		log.Fatalf("Failed to assemble demo manuscript: %v", err)
	}

	exporter := exporters.NewManuscriptExporter(*outDir)
	path, err := exporter.Export(meta, result, provider.Name())
	if err != nil {
		log.Fatalf("Failed to write demo manuscript: %v", err)
	}

	log.Printf("Demo manuscript written to %s (%d chapters)", path, len(result.Chapters))
}
