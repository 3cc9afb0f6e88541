package lorem

import "time"

// Tool describes the generator for a tool catalog.
type Tool struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToolInfo returns the catalog entry for the Markdown lorem ipsum generator.
func ToolInfo() Tool {
	return Tool{
		Name:        "Markdown Lorem Ipsum",
		Path:        "/markdown-lorem-ipsum",
		Description: "Generate Lorem Ipsum in markdown",
		Keywords:    []string{"markdown", "lorem", "ipsum"},
		Category:    "Markdown",
		CreatedAt:   time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC),
	}
}
