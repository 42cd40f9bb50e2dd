package yuletree

import "math/rand/v2"

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// NewRandomSource returns a deterministic PCG-backed source for the seed.
func NewRandomSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// sourceOrGlobal substitutes the process-wide generator for a nil source.
func sourceOrGlobal(rng RandomSource) RandomSource {
	if rng == nil {
		return globalSource{}
	}
	return rng
}

// Uniform returns a value in [lo, hi) drawn from rng. A nil rng uses the
// global math/rand/v2 generator.
func Uniform(rng RandomSource, lo, hi float64) float64 {
	return lo + sourceOrGlobal(rng).Float64()*(hi-lo)
}

// pick returns an index in [0, n) drawn from rng. Guards against a source
// that returns exactly 1.
func pick(rng RandomSource, n int) int {
	i := int(sourceOrGlobal(rng).Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
