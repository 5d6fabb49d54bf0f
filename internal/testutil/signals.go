package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Normalized returns length deterministic values drawn uniformly from [0, 1).
func Normalized(seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// Affine returns core.Lerp(in[i], lo, hi) for every sample, the reference
// output of a linear range mapping.
func Affine(in []float64, lo, hi float64) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = core.Lerp(x, lo, hi)
	}
	return out
}
