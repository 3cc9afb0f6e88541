package lorem

// Chain maps a word to every word observed directly after it, in corpus
// order. Buckets are not deduplicated so frequent successors are picked more
// often.
type Chain map[string][]string

// BuildChain builds a word-level Markov chain. The last word links back to the
// first so every corpus word has at least one successor.
func BuildChain(words []string) Chain {
	chain := make(Chain, len(words))
	if len(words) == 0 {
		return chain
	}
	for i := 0; i < len(words)-1; i++ {
		chain[words[i]] = append(chain[words[i]], words[i+1])
	}
	last := words[len(words)-1]
	chain[last] = append(chain[last], words[0])
	return chain
}

// Next picks a successor of current. Words with no bucket fall back to the
// whole corpus.
func (c Chain) Next(current string, rnd *Rand, corpus []string) string {
	candidates, ok := c[current]
	if !ok {
		candidates = corpus
	}
	return pick(rnd, candidates)
}

// pick returns a uniformly chosen element, or "" for an empty slice. The
// draw is consumed either way.
func pick(rnd *Rand, items []string) string {
	i := rnd.Intn(len(items))
	if i >= len(items) {
		return ""
	}
	return items[i]
}
