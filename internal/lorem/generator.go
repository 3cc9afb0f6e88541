// Package lorem generates deterministic placeholder Markdown from a seed.
//
// A run hashes the seed into a mulberry32 state, builds a word-level Markov
// chain from the selected corpus, and emits a fixed number of blocks whose
// types are picked by priority-ordered frequency bands. The same Config always
// yields the same bytes.
package lorem

import (
	"fmt"
	"strings"

	"github.com/dgallion1/mdlorem/internal/corpus"
)

// Header level walk, evaluated after each emitted header.
const (
	oneToTwoOdds   = 0.7
	twoToThreeOdds = 0.5
	threeToTwoOdds = 0.6
)

// referenceLinkOdds is the chance of trailing link definitions when inline
// links are enabled.
const referenceLinkOdds = 0.3

// Generator produces documents from a corpus registry. It holds no per-run
// state and is safe for concurrent use.
type Generator struct {
	corpora *corpus.Registry
}

func NewGenerator(reg *corpus.Registry) *Generator {
	return &Generator{corpora: reg}
}

// Generate renders cfg with the built-in corpora.
func Generate(cfg Config) (string, error) {
	return NewGenerator(corpus.Default()).Generate(cfg)
}

// Generate returns the document as a single Markdown string.
func (g *Generator) Generate(cfg Config) (string, error) {
	blocks, err := g.Blocks(cfg)
	if err != nil {
		return "", err
	}
	return strings.Join(blocks, "\n\n"), nil
}

// Blocks returns the document's blocks in order, before joining.
func (g *Generator) Blocks(cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	words := g.corpora.Words(cfg.Language)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, cfg.Language)
	}
	return newRun(cfg, words).document(), nil
}

// run is the state of one generation. It is never shared.
type run struct {
	cfg         Config
	rnd         *Rand
	words       []string
	chain       Chain
	headerLevel int
}

func newRun(cfg Config, words []string) *run {
	return &run{
		cfg:         cfg,
		rnd:         NewRand(HashSeed(cfg.Seed)),
		words:       words,
		chain:       BuildChain(words),
		headerLevel: 1,
	}
}

func (r *run) document() []string {
	c := r.cfg
	listBand := c.HeaderFrequency + c.ListFrequency
	codeBand := listBand + c.CodeFrequency
	quoteBand := codeBand + c.QuoteFrequency

	blocks := make([]string, 0, c.Blocks+2)
	for i := 0; i < c.Blocks; i++ {
		roll := r.rnd.Float64()
		switch {
		case c.EnableHeaders && roll < c.HeaderFrequency:
			blocks = append(blocks, r.header(r.headerLevel))
			r.nextHeaderLevel()
			blocks = append(blocks, r.paragraph())
		case c.EnableLists && roll < listBand:
			blocks = append(blocks, r.list())
		case c.EnableCode && roll < codeBand:
			blocks = append(blocks, r.codeBlock())
		case c.EnableBlockquotes && roll < quoteBand:
			blocks = append(blocks, r.blockquote())
		default:
			blocks = append(blocks, r.paragraph())
		}
	}

	if c.InlineLinks && r.rnd.Float64() < referenceLinkOdds {
		blocks = append(blocks,
			"[lorem]: "+linkBase+"lorem",
			"[ipsum]: "+linkBase+"ipsum",
		)
	}
	return blocks
}

// nextHeaderLevel moves between levels 1 to 3 so consecutive headers nest
// like a real outline.
func (r *run) nextHeaderLevel() {
	roll := r.rnd.Float64()
	switch r.headerLevel {
	case 1:
		if roll < oneToTwoOdds {
			r.headerLevel = 2
		}
	case 2:
		if roll < twoToThreeOdds {
			r.headerLevel = 3
		} else {
			r.headerLevel = 1
		}
	default:
		if roll < threeToTwoOdds {
			r.headerLevel = 2
		} else {
			r.headerLevel = 1
		}
	}
}
