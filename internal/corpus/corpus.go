// Package corpus resolves a language name to the word list used to build the
// generator's Markov chain.
package corpus

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed corpora.yaml
var builtin []byte

// Entry is one language family: several aliases sharing one source text.
type Entry struct {
	Languages []string `yaml:"languages"`
	Text      string   `yaml:"text"`
}

// Registry is an immutable, ordered table of corpus entries.
type Registry struct {
	entries []Entry
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the built-in registry. It panics if the embedded table is
// malformed, which only a broken build can cause.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := Load(bytes.NewReader(builtin))
		if err != nil {
			panic(fmt.Sprintf("corpus: embedded table: %v", err))
		}
		defaultReg = reg
	})
	return defaultReg
}

// New validates entries and returns a registry over a copy of them.
func New(entries []Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("corpus table has no entries")
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		if len(e.Languages) == 0 {
			return nil, fmt.Errorf("entry %d: no languages", i)
		}
		if len(strings.Fields(e.Text)) == 0 {
			return nil, fmt.Errorf("entry %d (%s): empty text", i, e.Languages[0])
		}
		out[i] = Entry{Languages: slices.Clone(e.Languages), Text: e.Text}
	}
	return &Registry{entries: out}, nil
}

// Load reads a YAML table of entries.
func Load(r io.Reader) (*Registry, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode corpus table: %w", err)
	}
	return New(entries)
}

// LoadFile reads a YAML table from disk.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Words returns the corpus for the first entry listing language, split on
// whitespace. An unknown language yields an empty slice.
func (r *Registry) Words(language string) []string {
	for _, e := range r.entries {
		if slices.Contains(e.Languages, language) {
			return strings.Fields(e.Text)
		}
	}
	return []string{}
}

// Languages returns every alias, sorted.
func (r *Registry) Languages() []string {
	var langs []string
	for _, e := range r.entries {
		langs = append(langs, e.Languages...)
	}
	slices.Sort(langs)
	return langs
}

// Supports reports whether language resolves to a corpus.
func (r *Registry) Supports(language string) bool {
	return len(r.Words(language)) > 0
}
