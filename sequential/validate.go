// Package sequential - staged configuration validation.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No panics on user input - only sentinel errors from types.go, plus
//     vecspace bound sentinels forwarded verbatim.
//   - Rejection is total: New never returns a partially built generator.
package sequential

import (
	"github.com/manuelbb-upb/pointsampler/vecspace"
)

// validateConfig verifies the resolved configuration and returns the
// validated design box on success.
//
// Stages:
//  1. Scalar knobs: dims, budget, spawn factor, candidate cap, threshold.
//  2. Bounds: defaulted to [0,1]^dims when unset, then vecspace.NewBox
//     (shape, finiteness, ordering, zero-width axes).
//  3. Seeds: every seed point must have length dims.
//
// Complexity: O(d + |seeds|).
func validateConfig(c config) (vecspace.Box, error) {
	// Stage 1: scalar knobs.
	if c.dims <= 0 {
		return vecspace.Box{}, ErrNonPositiveDims
	}
	if c.nPointsSet && c.nPoints < 0 {
		return vecspace.Box{}, ErrNegativeNPoints
	}
	if c.spawnFactor <= 0 {
		return vecspace.Box{}, ErrNonPositiveSpawnFactor
	}
	if c.maxRandPoints <= 0 {
		return vecspace.Box{}, ErrNonPositiveMaxRand
	}
	if c.thresholdFactor < 0 {
		return vecspace.Box{}, ErrNegativeThreshold
	}

	// Stage 2: bounds. Unset bounds default to the unit hypercube; set
	// bounds must also match dims, which NewBox alone cannot know.
	var (
		box vecspace.Box
		err error
	)
	if c.lo == nil && c.up == nil {
		box, err = vecspace.UnitBox(c.dims)
	} else {
		if len(c.lo) != c.dims || len(c.up) != c.dims {
			return vecspace.Box{}, vecspace.ErrDimensionMismatch
		}
		box, err = vecspace.NewBox(c.lo, c.up)
	}
	if err != nil {
		return vecspace.Box{}, err
	}

	// Stage 3: seed shapes.
	for _, s := range c.seeds {
		if len(s) != c.dims {
			return vecspace.Box{}, ErrSeedDimension
		}
	}

	return box, nil
}
