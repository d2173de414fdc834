package scramble

import "math/rand"

// intn returns a uniform int in [0, n). A seeded Generator draws from
// its own source; otherwise the locked global source is used, so the
// package-level functions are safe for concurrent callers.
func (g *Generator) intn(n int) int {
	if g != nil && g.rng != nil {
		return g.rng.Intn(n)
	}
	return rand.Intn(n)
}

// randomInt returns a uniform int in [min, max] inclusive.
func (g *Generator) randomInt(min, max int) int {
	return min + g.intn(max-min+1)
}

// randomElement returns a uniformly chosen element of seq.
// seq must be non-empty; every call site guarantees that by
// construction of its candidate filtering.
func randomElement[T any](g *Generator, seq []T) T {
	return seq[g.intn(len(seq))]
}

// chance reports true with probability pct/100.
func (g *Generator) chance(pct int) bool {
	return g.intn(100) < pct
}

// Shuffle returns a new slice holding a uniformly random permutation
// of seq (Fisher-Yates). The input is not modified. No generator uses
// it directly; it is provided for callers that randomize puzzle
// rotations or batches.
func Shuffle[T any](g *Generator, seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	for i := len(out) - 1; i > 0; i-- {
		j := g.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
