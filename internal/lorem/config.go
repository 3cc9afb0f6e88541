package lorem

import (
	"fmt"
	"math"
)

// HeaderStyle selects the Markdown heading syntax.
type HeaderStyle string

const (
	HeaderATX    HeaderStyle = "atx"
	HeaderSetext HeaderStyle = "setext"
)

// ListStyle selects ordered or unordered list markers.
type ListStyle string

const (
	ListUnordered ListStyle = "unordered"
	ListOrdered   ListStyle = "ordered"
)

// Hard bounds on a single run regardless of caller limits. Output size grows
// linearly with both.
const (
	MaxBlocks                   = 10000
	MaxAvgSentencesPerParagraph = 100
)

// Config describes one generation run. It is read-only during the run.
//
// The four frequencies are not normalized. They form cumulative bands checked
// in the order header, list, code, quote; a sum above 1 starves the later
// bands.
type Config struct {
	Seed                     string  `json:"seed" yaml:"seed"`
	Blocks                   int     `json:"blocks" yaml:"blocks"`
	AvgSentencesPerParagraph float64 `json:"avg_sentences_per_paragraph" yaml:"avg_sentences_per_paragraph"`

	EnableHeaders     bool `json:"enable_headers" yaml:"enable_headers"`
	EnableLists       bool `json:"enable_lists" yaml:"enable_lists"`
	EnableCode        bool `json:"enable_code" yaml:"enable_code"`
	EnableBlockquotes bool `json:"enable_blockquotes" yaml:"enable_blockquotes"`

	InlineEmphasis bool `json:"inline_emphasis" yaml:"inline_emphasis"`
	InlineStrong   bool `json:"inline_strong" yaml:"inline_strong"`
	InlineLinks    bool `json:"inline_links" yaml:"inline_links"`
	InlineCode     bool `json:"inline_code" yaml:"inline_code"`

	HeaderStyle HeaderStyle `json:"header_style" yaml:"header_style"`
	ListStyle   ListStyle   `json:"list_style" yaml:"list_style"`

	HeaderFrequency float64 `json:"header_frequency" yaml:"header_frequency"`
	ListFrequency   float64 `json:"list_frequency" yaml:"list_frequency"`
	CodeFrequency   float64 `json:"code_frequency" yaml:"code_frequency"`
	QuoteFrequency  float64 `json:"quote_frequency" yaml:"quote_frequency"`

	Language string `json:"language" yaml:"language"`
}

// DefaultConfig returns the settings the tool starts with.
func DefaultConfig() Config {
	return Config{
		Seed:                     "lorem",
		Blocks:                   8,
		AvgSentencesPerParagraph: 4,
		EnableHeaders:            true,
		EnableLists:              true,
		EnableCode:               true,
		EnableBlockquotes:        true,
		InlineEmphasis:           true,
		InlineStrong:             true,
		InlineLinks:              true,
		InlineCode:               true,
		HeaderStyle:              HeaderATX,
		ListStyle:                ListUnordered,
		HeaderFrequency:          0.25,
		ListFrequency:            0.25,
		CodeFrequency:            0.15,
		QuoteFrequency:           0.15,
		Language:                 "Latin",
	}
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Blocks <= 0 {
		return fmt.Errorf("%w: blocks must be positive, got %d", ErrInvalidConfig, c.Blocks)
	}
	if c.Blocks > MaxBlocks {
		return fmt.Errorf("%w: blocks must be at most %d, got %d", ErrInvalidConfig, MaxBlocks, c.Blocks)
	}
	if !(c.AvgSentencesPerParagraph > 0) || math.IsInf(c.AvgSentencesPerParagraph, 0) {
		return fmt.Errorf("%w: avg_sentences_per_paragraph must be a positive number, got %v", ErrInvalidConfig, c.AvgSentencesPerParagraph)
	}
	if c.AvgSentencesPerParagraph > MaxAvgSentencesPerParagraph {
		return fmt.Errorf("%w: avg_sentences_per_paragraph must be at most %d, got %v", ErrInvalidConfig, MaxAvgSentencesPerParagraph, c.AvgSentencesPerParagraph)
	}
	switch c.HeaderStyle {
	case HeaderATX, HeaderSetext:
	default:
		return fmt.Errorf("%w: unknown header style %q", ErrInvalidConfig, c.HeaderStyle)
	}
	switch c.ListStyle {
	case ListUnordered, ListOrdered:
	default:
		return fmt.Errorf("%w: unknown list style %q", ErrInvalidConfig, c.ListStyle)
	}
	bands := []struct {
		name string
		f    float64
	}{
		{"header_frequency", c.HeaderFrequency},
		{"list_frequency", c.ListFrequency},
		{"code_frequency", c.CodeFrequency},
		{"quote_frequency", c.QuoteFrequency},
	}
	for _, b := range bands {
		if math.IsNaN(b.f) || b.f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidConfig, b.name, b.f)
		}
	}
	return nil
}
