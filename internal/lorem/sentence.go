package lorem

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Per-token decoration odds, rolled in this order.
const (
	codeSpanOdds = 0.05
	emphasisOdds = 0.08
	strongOdds   = 0.06
	linkOdds     = 0.05
)

const linkBase = "https://example.com/"

// sentence walks the chain for a random length in [min, max] and returns a
// capitalized, punctuated sentence.
func (r *run) sentence(min, max int) string {
	n := r.rnd.between(min, max)
	w := pick(r.rnd, r.words)
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, r.decorate(w))
		w = r.chain.Next(w, r.rnd, r.words)
	}
	return capitalize(strings.Join(parts, " ")) + r.terminal()
}

// decorate applies the enabled inline styles. The checks are independent, so
// one token can end up with several.
func (r *run) decorate(token string) string {
	if r.cfg.InlineCode && r.rnd.Float64() < codeSpanOdds {
		token = "`" + token + "`"
	}
	if r.cfg.InlineEmphasis && r.rnd.Float64() < emphasisOdds {
		token = "*" + token + "*"
	}
	if r.cfg.InlineStrong && r.rnd.Float64() < strongOdds {
		token = "**" + token + "**"
	}
	if r.cfg.InlineLinks && r.rnd.Float64() < linkOdds {
		token = "[" + token + "](" + linkBase + token + ")"
	}
	return token
}

func (r *run) terminal() string {
	if r.rnd.Float64() < 0.1 {
		return "?!"
	}
	if r.rnd.Float64() < 0.5 {
		return "."
	}
	return "!"
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
