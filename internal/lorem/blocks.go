package lorem

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

func (r *run) paragraph() string {
	n := int(math.Floor(r.cfg.AvgSentencesPerParagraph + (r.rnd.Float64()-0.5)*2 + 0.5))
	if n < 1 {
		n = 1
	}
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = r.sentence(6, 16)
	}
	return strings.Join(sentences, " ")
}

// header renders a three-word title at level. ATX output caps at six hashes.
func (r *run) header(level int) string {
	title := capitalize(pick(r.rnd, r.words)) + " " +
		capitalize(pick(r.rnd, r.words)) + " " +
		capitalize(pick(r.rnd, r.words))

	if r.cfg.HeaderStyle == HeaderATX {
		return strings.Repeat("#", min(level, 6)) + " " + title
	}
	rule := "-"
	if level <= 1 {
		rule = "="
	}
	return title + "\n" + strings.Repeat(rule, utf8.RuneCountInString(title))
}

var bulletMarkers = []string{"-", "*", "+"}

// list renders 3 to 7 items. Unordered items take exactly one draw for the
// marker, uniform over bulletMarkers, before the item's sentence.
func (r *run) list() string {
	items := r.rnd.between(3, 7)
	lines := make([]string, items)
	for i := range lines {
		var marker string
		if r.cfg.ListStyle == ListOrdered {
			marker = strconv.Itoa(i+1) + "."
		} else {
			marker = pick(r.rnd, bulletMarkers)
		}
		lines[i] = marker + " " + r.sentence(4, 10)
	}
	return strings.Join(lines, "\n")
}

func (r *run) codeBlock() string {
	lang := pick(r.rnd, codeLanguages)
	return "```" + lang + "\n" + strings.Join(codeSamples[lang], "\n") + "\n```"
}

func (r *run) blockquote() string {
	lines := make([]string, r.rnd.between(1, 3))
	for i := range lines {
		lines[i] = "> " + r.sentence(6, 12)
	}
	return strings.Join(lines, "\n")
}

var codeLanguages = []string{"ts", "js", "json", "bash", "md", "python", "csharp"}

var codeSamples = map[string][]string{
	"ts": {
		"type User = { id: number; name: string }",
		"const users: User[] = []",
		"function addUser(u: User) { users.push(u) }",
		`addUser({ id: 1, name: "lorem" })`,
	},
	"js": {
		"const arr = [1,2,3]",
		"arr.forEach(x => console.log(x))",
		"function square(n) { return n*n }",
		"console.log(square(5))",
	},
	"json": {
		"{",
		`  "id": 42,`,
		`  "name": "ipsum",`,
		`  "active": true`,
		"}",
	},
	"bash": {
		"#!/bin/bash",
		`echo "Hello lorem"`,
		"for i in {1..3}; do",
		`  echo "Item $i"`,
		"done",
	},
	"md": {
		"# Sample Markdown",
		"",
		"- Item one",
		"- Item two",
		"",
		"> Blockquote lorem ipsum",
	},
	"python": {
		"def greet(name):",
		`    print(f"Hello {name}")`,
		"",
		`for n in ["lorem", "ipsum"]:`,
		"    greet(n)",
	},
	"csharp": {
		"public class Hello {",
		"  public static void Main() {",
		`    Console.WriteLine("Hello lorem");`,
		"  }",
		"}",
	},
}
