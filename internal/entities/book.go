package entities

// BookMetadata is the caller-supplied description of the manuscript to
// assemble. TableOfContents is a single string using newline or comma as the
// chapter delimiter; newline wins when both are present.
type BookMetadata struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	Description     string `json:"description,omitempty"`
	TableOfContents string `json:"table_of_contents"`

	// Topic selects an offline knowledge-table entry; unknown topics fall
	// back to generic filler content.
	Topic string `json:"topic,omitempty"`
}
