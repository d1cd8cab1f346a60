// Package exporters writes finished manuscripts to disk.
package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/id01t/bookforge/internal/entities"
	"github.com/id01t/bookforge/internal/manuscript"
	"github.com/id01t/bookforge/internal/utils"
)

type ManuscriptExporter struct {
	ExportDir string
}

func NewManuscriptExporter(exportDir string) *ManuscriptExporter {
	return &ManuscriptExporter{ExportDir: exportDir}
}

// Export writes the manuscript to <export dir>/<slug>.md and returns the
// path. The export directory is created if it does not exist yet.
func (exporter *ManuscriptExporter) Export(meta entities.BookMetadata, result *manuscript.Result, provider string) (string, error) {
	if err := os.MkdirAll(exporter.ExportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	outputPath := filepath.Join(exporter.ExportDir, utils.Slugify(meta.Title)+".md")

	file, err := os.Create(outputPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var builder strings.Builder
	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "title: %q\n", meta.Title)
	if meta.Subtitle != "" {
		fmt.Fprintf(&builder, "subtitle: %q\n", meta.Subtitle)
	}
	fmt.Fprintf(&builder, "created_at: %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(&builder, "provider: %s\n", provider)
	fmt.Fprintf(&builder, "run_id: %s\n", result.RunID)
	fmt.Fprintf(&builder, "chapters: %d\n", len(result.Chapters))
	if result.Partial {
		fmt.Fprintf(&builder, "partial: true\n")
	}
	fmt.Fprintf(&builder, "---\n\n")
	builder.WriteString(result.Document)
	if !strings.HasSuffix(result.Document, "\n") {
		builder.WriteString("\n")
	}

	if _, err := file.WriteString(builder.String()); err != nil {
		return "", err
	}
	return outputPath, nil
}
