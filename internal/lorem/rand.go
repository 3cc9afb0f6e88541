package lorem

import "unicode/utf16"

// HashSeed folds a seed string into a 32-bit PRNG state using FNV-1a over the
// string's UTF-16 code units.
func HashSeed(seed string) uint32 {
	h := uint32(2166136261)
	for _, unit := range utf16.Encode([]rune(seed)) {
		h ^= uint32(unit)
		h *= 16777619
	}
	return h
}

// Rand is a mulberry32 generator. It is small and fast, not cryptographic.
// A Rand must not be shared between generation runs.
type Rand struct {
	state uint32
}

func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Float64 advances the state and returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// Intn returns a value in [0, n). n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

// between returns a value in [min, max], inclusive on both ends.
func (r *Rand) between(min, max int) int {
	return r.Intn(max-min+1) + min
}
