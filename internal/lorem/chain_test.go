package lorem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuildChain_KeepsObservationOrder(t *testing.T) {
	chain := BuildChain([]string{"a", "b", "a", "c", "a", "b"})
	assert.Equal(t, Chain{
		"a": {"b", "c", "b"},
		"b": {"a", "a"},
		"c": {"a"},
	}, chain)
}

func TestBuildChain_Degenerate(t *testing.T) {
	empty := BuildChain(nil)
	require.NotNil(t, empty)
	assert.Empty(t, empty)

	assert.Equal(t, Chain{"solo": {"solo"}}, BuildChain([]string{"solo"}))
}

func TestBuildChain_EveryWordHasSuccessor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.SampledFrom([]string{"lorem", "ipsum", "dolor", "sit", "amet"}), 1, 50).Draw(t, "words")
		chain := BuildChain(words)
		for _, w := range words {
			if len(chain[w]) == 0 {
				t.Fatalf("word %q has no successors in %v", w, chain)
			}
		}
		total := 0
		for _, next := range chain {
			total += len(next)
		}
		if total != len(words) {
			t.Fatalf("expected %d transitions, got %d", len(words), total)
		}
	})
}

func TestChainNext_FallsBackToCorpus(t *testing.T) {
	corpus := []string{"only"}
	chain := Chain{"known": {"next"}}
	rnd := NewRand(1)

	assert.Equal(t, "next", chain.Next("known", rnd, corpus))
	assert.Equal(t, "only", chain.Next("unseen", rnd, corpus))
}

func TestPick_EmptyIsBlank(t *testing.T) {
	assert.Equal(t, "", pick(NewRand(1), nil))
	assert.Equal(t, "", Chain{}.Next("x", NewRand(1), nil))
}
