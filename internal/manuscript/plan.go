package manuscript

import (
	"fmt"
	"strings"
)

// defaultChapters is used when the table of contents is empty.
var defaultChapters = []string{"Introduction", "Chapter 1", "Chapter 2", "Conclusion"}

// Plan is the parsed chapter list for one run.
type Plan struct {
	Chapters []string
	// Warnings collects titles that were dropped during parsing, such as
	// blank entries between delimiters.
	Warnings []string
}

// ParsePlan splits a table of contents into chapter titles. Newlines take
// precedence as the delimiter; commas are only used when the input is a
// single line. Blank entries are skipped, duplicates are kept as-is.
func ParsePlan(tableOfContents string) Plan {
	trimmed := strings.TrimSpace(tableOfContents)
	if trimmed == "" {
		chapters := make([]string, len(defaultChapters))
		copy(chapters, defaultChapters)
		return Plan{Chapters: chapters}
	}

	var parts []string
	if strings.Contains(trimmed, "\n") {
		parts = strings.Split(trimmed, "\n")
	} else {
		parts = strings.Split(trimmed, ",")
	}

	plan := Plan{}
	for i, part := range parts {
		title := strings.TrimSpace(part)
		if title == "" {
			plan.Warnings = append(plan.Warnings, chapterWarning(i+1))
			continue
		}
		plan.Chapters = append(plan.Chapters, title)
	}

	if len(plan.Chapters) == 0 {
		chapters := make([]string, len(defaultChapters))
		copy(chapters, defaultChapters)
		plan.Chapters = chapters
	}
	return plan
}

func chapterWarning(position int) string {
	return fmt.Sprintf("skipping empty chapter title at position %d", position)
}
