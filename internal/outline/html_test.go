package outline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromHTML_HeadingHierarchy(t *testing.T) {
	input := `<html><head><title>Doc</title></head><body>
<h1>Title</h1><p>Intro.</p>
<h2>Part</h2><ul><li>one</li><li>two</li></ul>
<h1>Next</h1><pre><code>x := 1</code></pre><blockquote><p>q</p></blockquote>
<script>ignored()</script>
</body></html>`

	o, err := FromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Heading{{1, "Title"}, {2, "Part"}, {1, "Next"}}
	if diff := cmp.Diff(want, o.Headings()); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	wantCounts := BlockCounts{Headings: 3, Paragraphs: 1, Lists: 1, CodeBlocks: 1, Blockquotes: 1}
	if o.Blocks != wantCounts {
		t.Errorf("expected counts %+v, got %+v", wantCounts, o.Blocks)
	}
	if strings.Contains(o.Sections[1].Text, "ignored") {
		t.Errorf("expected script content to be skipped, got %q", o.Sections[1].Text)
	}
}

func TestHeadingLevel(t *testing.T) {
	tests := map[string]int{"h1": 1, "h6": 6, "h7": 0, "p": 0, "hr": 0, "": 0}
	for tag, want := range tests {
		if got := headingLevel(tag); got != want {
			t.Errorf("headingLevel(%q): expected %d, got %d", tag, want, got)
		}
	}
}
