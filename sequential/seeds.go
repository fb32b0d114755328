// Package sequential - seed preparation.
package sequential

import (
	"github.com/manuelbb-upb/pointsampler/vecspace"
)

// cleanSeeds returns the subsequence of seeds, order preserved, whose every
// coordinate lies inside box. The input is not mutated.
//
// Complexity: O(|seeds|·d).
func cleanSeeds(seeds [][]float64, box vecspace.Box) [][]float64 {
	out := make([][]float64, 0, len(seeds))
	for _, s := range seeds {
		if box.Contains(s) {
			out = append(out, s)
		}
	}

	return out
}

// prepareSeeds filters seeds against box (identity when clean is false) and
// maps the survivors into unit-cube coordinates, preserving order. Called
// once, lazily, on the first generation step.
//
// With clean==false an out-of-box seed still enters the design; its unit
// image then lies outside [0,1]^d, which the scorer tolerates.
//
// Complexity: O(|seeds|·d).
func prepareSeeds(seeds [][]float64, box vecspace.Box, clean bool) [][]float64 {
	kept := seeds
	if clean {
		kept = cleanSeeds(seeds, box)
	}

	return box.ToUnitBatch(kept)
}
