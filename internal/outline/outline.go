// Package outline recovers the heading structure of a generated document,
// either from its Markdown source or from rendered HTML.
package outline

// Outline is the root of a parsed document.
type Outline struct {
	Sections []*Section  `json:"sections"` // Top-level sections
	Blocks   BlockCounts `json:"blocks"`
}

// Section is a heading and everything nested under it.
type Section struct {
	Title    string     `json:"title,omitempty"` // Heading text (empty for leading text)
	Level    int        `json:"level"`           // 1-6, 0 for text before the first heading
	Text     string     `json:"text,omitempty"`
	Children []*Section `json:"children,omitempty"`
}

// BlockCounts tallies top-level blocks by kind.
type BlockCounts struct {
	Headings    int `json:"headings"`
	Paragraphs  int `json:"paragraphs"`
	Lists       int `json:"lists"`
	CodeBlocks  int `json:"code_blocks"`
	Blockquotes int `json:"blockquotes"`
}

// Heading is one entry of the flattened outline.
type Heading struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// Headings walks the outline depth-first in document order.
func (o *Outline) Headings() []Heading {
	var out []Heading
	var walk func([]*Section)
	walk = func(sections []*Section) {
		for _, s := range sections {
			if s.Title != "" {
				out = append(out, Heading{Level: s.Level, Title: s.Title})
			}
			walk(s.Children)
		}
	}
	walk(o.Sections)
	return out
}

// MaxDepth is the deepest heading level present, or 0 with no headings.
func (o *Outline) MaxDepth() int {
	depth := 0
	for _, h := range o.Headings() {
		depth = max(depth, h.Level)
	}
	return depth
}

// builder nests sections by heading level using a stack.
type builder struct {
	root  *Section
	stack []*Section
	text  []string
}

func newBuilder() *builder {
	root := &Section{}
	return &builder{root: root, stack: []*Section{root}}
}

func (b *builder) heading(level int, title string) {
	b.flush()
	s := &Section{Title: title, Level: level}
	// Pop until the top is a strictly shallower section.
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].Level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1]
	parent.Children = append(parent.Children, s)
	b.stack = append(b.stack, s)
}

func (b *builder) addText(t string) {
	if t != "" {
		b.text = append(b.text, t)
	}
}

func (b *builder) flush() {
	if len(b.text) == 0 {
		return
	}
	top := b.stack[len(b.stack)-1]
	for _, t := range b.text {
		if top.Text != "" {
			top.Text += "\n\n" + t
		} else {
			top.Text = t
		}
	}
	b.text = b.text[:0]
}

func (b *builder) outline(counts BlockCounts) *Outline {
	b.flush()
	sections := b.root.Children
	// Text before the first heading becomes its own level-0 section.
	if b.root.Text != "" {
		sections = append([]*Section{{Text: b.root.Text}}, sections...)
	}
	return &Outline{Sections: sections, Blocks: counts}
}
