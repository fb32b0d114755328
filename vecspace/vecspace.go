// Package vecspace - distance primitives shared by design generators.
//
// All helpers in this file are pure: no mutation of inputs, no hidden
// state. Vector lengths are a caller contract (validated once at the
// configuration boundary), keeping the per-candidate hot path free of
// redundant checks.
package vecspace

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Distance returns the Euclidean norm of p−q.
//
// Contract: len(p) == len(q) > 0.
//
// Complexity: O(d).
func Distance(p, q []float64) float64 {
	return floats.Distance(p, q, 2)
}

// Distances returns Distance(p, s) for every s in set, preserving order.
//
// Contract: every member of set has len(p).
//
// Complexity: O(|set|·d) time, O(|set|) space.
func Distances(p []float64, set [][]float64) []float64 {
	out := make([]float64, len(set))
	for i, s := range set {
		out[i] = floats.Distance(p, s, 2)
	}

	return out
}

// ProjectedDistance returns the minimum over coordinates of |p_i − q_i|:
// the smallest single-axis separation between p and q.
//
// Contract: len(p) == len(q) > 0.
//
// Complexity: O(d).
func ProjectedDistance(p, q []float64) float64 {
	best := math.Inf(1)

	var sep float64 // current single-axis separation
	for i := range p {
		sep = math.Abs(p[i] - q[i])
		if sep < best {
			best = sep
		}
	}

	return best
}

// ProjectedDistances returns ProjectedDistance(p, s) for every s in set,
// preserving order.
//
// Complexity: O(|set|·d) time, O(|set|) space.
func ProjectedDistances(p []float64, set [][]float64) []float64 {
	out := make([]float64, len(set))
	for i, s := range set {
		out[i] = ProjectedDistance(p, s)
	}

	return out
}

// ProjectedDistancesThresholded returns the projected distances from p to
// set with every value strictly below tau clamped to 0. Clamping happens
// per neighbor, before any aggregation by the caller.
//
// Complexity: O(|set|·d) time, O(|set|) space.
func ProjectedDistancesThresholded(p []float64, set [][]float64, tau float64) []float64 {
	out := make([]float64, len(set))

	var pd float64 // projected distance to the current neighbor
	for i, s := range set {
		pd = ProjectedDistance(p, s)
		if pd < tau {
			pd = 0
		}
		out[i] = pd
	}

	return out
}
