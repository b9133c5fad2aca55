package gen

import (
	"math"
	"math/rand"
)

// Sampling helpers over an explicitly owned *rand.Rand. Nothing in this
// package touches the global source; the same seed always yields the
// same dataset.

// uniform draws from the half-open interval [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// logNormalInt draws floor(exp(N(mu, sigma))) clipped to [lo, hi].
// Used for heavy-tailed counts: few large values, many small ones.
func logNormalInt(r *rand.Rand, mu, sigma float64, lo, hi int) int {
	v := int(math.Exp(mu + sigma*r.NormFloat64()))
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// weightedIndex picks an index with probability proportional to weights[i].
func weightedIndex(r *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	for i, w := range weights {
		x -= w
		if x < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// chance returns true with probability p.
func chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}
