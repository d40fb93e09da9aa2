// Edge-weight distributions for graph constructors.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight every edge gets when no WeightFn is set.
const DefaultEdgeWeight = 1.0

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value. Negative and
// zero weights are allowed; maximum spanning forests on negated weights rely
// on them.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi).
// Panics if hi < lo. With a nil rng it yields lo.
func UniformWeightFn(lo, hi float64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IntegerWeightFn returns a WeightFn sampling integers uniformly in
// [lo, hi], as float64. Integer weights keep sums exact in tests.
// Panics if hi < lo. With a nil rng it yields lo.
func IntegerWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("IntegerWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// UndefinedWeightFn wraps base so that a share p of the weights is NaN.
// Panics if p is outside [0,1] or base is nil. With a nil rng it defers to
// base unless p == 1.
func UndefinedWeightFn(p float64, base WeightFn) WeightFn {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("UndefinedWeightFn: p must be in [0,1], got %g", p))
	}
	if base == nil {
		panic("UndefinedWeightFn: nil base")
	}

	return func(rng *rand.Rand) float64 {
		if p == 1 || (rng != nil && rng.Float64() < p) {
			return math.NaN()
		}

		return base(rng)
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[lo,hi).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithIntegerWeight sets integer weights ∼ U{lo..hi}.
func WithIntegerWeight(lo, hi int) BuilderOption {
	return WithWeightFn(IntegerWeightFn(lo, hi))
}
