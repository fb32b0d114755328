// Package sequential defines the sentinel errors of the design generator.
// Bound-shape violations are reported with the vecspace sentinels
// (ErrDimensionMismatch, ErrNonFiniteBound, ErrInvertedBounds,
// ErrDegenerateAxis) forwarded as-is by New.
package sequential

import "errors"

var (
	// ErrNonPositiveDims indicates dims ≤ 0.
	ErrNonPositiveDims = errors.New("sequential: dims must be positive")
	// ErrNegativeNPoints indicates an explicitly negative point budget.
	ErrNegativeNPoints = errors.New("sequential: number of points must be non-negative")
	// ErrSeedDimension indicates a seed point whose length differs from dims.
	ErrSeedDimension = errors.New("sequential: seed point length must equal dims")
	// ErrNonPositiveSpawnFactor indicates SpawnFactor ≤ 0.
	ErrNonPositiveSpawnFactor = errors.New("sequential: spawn factor must be positive")
	// ErrNonPositiveMaxRand indicates MaxRandPoints ≤ 0.
	ErrNonPositiveMaxRand = errors.New("sequential: max random points must be positive")
	// ErrNegativeThreshold indicates ThresholdFactor < 0.
	ErrNegativeThreshold = errors.New("sequential: threshold factor must be non-negative")
)
