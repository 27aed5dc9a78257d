package rank

import (
	"fmt"
	"math/rand/v2"
)

// Rand is the randomness SampleRank draws from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG-backed generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SampleRank estimates PageRank by walking the transition model for n
// steps from a uniformly chosen start page. The rank of a page is its
// visit count divided by n.
//
// Only the first n-1 pages of the walk are tallied, so the ranks sum to
// (n-1)/n rather than 1.
func SampleRank(c *Corpus, damping float64, n int, rng Rand) (RankResult, error) {
	if err := checkDamping(damping); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: sample count %d must be at least 1", ErrInvalidArgument, n)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}

	counts := make([]int, len(c.pages))
	cur := rng.IntN(len(c.pages))
	for i := 0; i < n-1; i++ {
		counts[cur]++
		cur = choose(c.transition(cur, damping), rng)
	}

	ranks := make([]float64, len(counts))
	for i, v := range counts {
		ranks[i] = float64(v) / float64(n)
	}
	return c.distribution(ranks), nil
}

// choose draws an index weighted by probs.
func choose(probs []float64, rng Rand) int {
	total := 0.0
	for _, p := range probs {
		total += p
	}
	r := rng.Float64() * total
	acc := 0.0
	for i, p := range probs {
		acc += p
		if r < acc {
			return i
		}
	}
	// rounding can leave r at the very top of the range
	for i := len(probs) - 1; i > 0; i-- {
		if probs[i] > 0 {
			return i
		}
	}
	return 0
}
