// Package sequential - the candidate scoring kernel.
//
// Two historical scoring policies exist for threshold handling: clamping
// each per-neighbor projected distance below τ to zero before taking the
// minimum, versus branching the whole formula on whether the raw minimum
// clears τ. They produce different designs. This implementation commits to
// the per-neighbor clamping policy and does not merge the two.
package sequential

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/manuelbb-upb/pointsampler/vecspace"
)

// scorer evaluates candidates against the accepted unit-cube design.
// It is a pure value: safe to copy, no internal state.
type scorer struct {
	dims            int
	thresholdFactor float64
}

// score returns the blended space-filling score of candidate p against the
// accepted points:
//
//	intersite = ((N+1)^(1/dims) − 1) / 2 · min Euclidean distance
//	projected = (N+1)/2 · min thresholded projected distance, τ = 2·tf/N
//
// Higher is better. Contract: len(accepted) ≥ 1 (the τ division needs N≥1;
// the generator only scores once a first point exists).
//
// Complexity: O(N·d) time, O(N) space.
func (sc scorer) score(p []float64, accepted [][]float64) float64 {
	n := float64(len(accepted))

	intersiteFactor := (math.Pow(n+1, 1/float64(sc.dims)) - 1) / 2
	projectedFactor := (n + 1) / 2
	tau := 2 * sc.thresholdFactor / n

	idist := floats.Min(vecspace.Distances(p, accepted))
	pdist := floats.Min(vecspace.ProjectedDistancesThresholded(p, accepted, tau))

	return intersiteFactor*idist + projectedFactor*pdist
}
