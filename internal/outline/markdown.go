package outline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown parses src with goldmark and nests its top-level blocks under
// their headings. Parsing Markdown cannot fail; any input yields an outline.
func FromMarkdown(src []byte) *Outline {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	b := newBuilder()
	var counts BlockCounts
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			counts.Headings++
			b.heading(node.Level, extractText(node, src))
			continue
		case *ast.Paragraph:
			counts.Paragraphs++
		case *ast.List:
			counts.Lists++
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			counts.CodeBlocks++
		case *ast.Blockquote:
			counts.Blockquotes++
		}
		b.addText(extractText(n, src))
	}
	return b.outline(counts)
}

// extractText gets the text content of a goldmark AST node. Leaf blocks such
// as code blocks carry raw lines; everything else is read from inline children.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	writeText(&buf, n, src)
	return strings.TrimSpace(buf.String())
}

func writeText(buf *bytes.Buffer, n ast.Node, src []byte) {
	if n.Type() == ast.TypeBlock && !n.HasChildren() {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(src))
			if c.HardLineBreak() || c.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(c.Value)
		default:
			// Separate sibling blocks so list items don't run together.
			if c.Type() == ast.TypeBlock && buf.Len() > 0 && !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
				buf.WriteByte('\n')
			}
			writeText(buf, c, src)
		}
	}
}
