// Package vecspace - the Box affine mapping between a hyperrectangle and
// the unit hypercube.
//
// Design principles:
//   - Validate once: NewBox rejects malformed bounds with sentinel errors;
//     every method afterwards is total.
//   - Immutability: the constructor copies its inputs and accessors return
//     copies, so a Box can be shared across generators and goroutines.
package vecspace

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
)

// Box is a validated n-dimensional hyperrectangle [lo, up] with strictly
// positive width on every axis. The zero Box is not usable; obtain one via
// NewBox or UnitBox.
type Box struct {
	lo    []float64 // lower bounds, len == dims
	up    []float64 // upper bounds, len == dims
	width []float64 // up − lo, precomputed; every entry > 0
}

// NewBox validates lo/up and returns an immutable Box.
//
// Validation stages:
//  1. Shape: equal, positive lengths.
//  2. Finiteness: no NaN or ±Inf entries.
//  3. Ordering: lo_i ≤ up_i, and strictly lo_i < up_i (zero-width axes are
//     rejected here rather than surfacing as a division by zero in ToUnit).
//
// Complexity: O(d) time, O(d) space (defensive copies).
func NewBox(lo, up []float64) (Box, error) {
	if len(lo) == 0 || len(lo) != len(up) {
		return Box{}, ErrDimensionMismatch
	}

	var i int
	for i = range lo {
		if math.IsNaN(lo[i]) || math.IsInf(lo[i], 0) || math.IsNaN(up[i]) || math.IsInf(up[i], 0) {
			return Box{}, ErrNonFiniteBound
		}
		if lo[i] > up[i] {
			return Box{}, ErrInvertedBounds
		}
		if lo[i] == up[i] {
			return Box{}, ErrDegenerateAxis
		}
	}

	b := Box{
		lo:    append([]float64(nil), lo...),
		up:    append([]float64(nil), up...),
		width: make([]float64, len(lo)),
	}
	floats.SubTo(b.width, b.up, b.lo)

	return b, nil
}

// UnitBox returns the unit hypercube [0,1]^dims. It errors only when
// dims ≤ 0.
func UnitBox(dims int) (Box, error) {
	if dims <= 0 {
		return Box{}, ErrDimensionMismatch
	}
	lo := make([]float64, dims)
	up := make([]float64, dims)
	for i := range up {
		up[i] = 1
	}

	return NewBox(lo, up)
}

// Dims returns the number of axes.
func (b Box) Dims() int { return len(b.lo) }

// Lo returns a copy of the lower bounds.
func (b Box) Lo() []float64 { return append([]float64(nil), b.lo...) }

// Up returns a copy of the upper bounds.
func (b Box) Up() []float64 { return append([]float64(nil), b.up...) }

// Contains reports whether lo_i ≤ p_i ≤ up_i for every axis. Points of the
// wrong length are never contained.
//
// Complexity: O(d).
func (b Box) Contains(p []float64) bool {
	if len(p) != len(b.lo) {
		return false
	}
	for i := range p {
		if p[i] < b.lo[i] || p[i] > b.up[i] {
			return false
		}
	}

	return true
}

// ToUnit maps p from box coordinates into [0,1]^d:
// out_i = (p_i − lo_i) / (up_i − lo_i).
//
// Contract: len(p) == Dims(). The input is not mutated.
//
// Complexity: O(d) time, O(d) space.
func (b Box) ToUnit(p []float64) []float64 {
	out := append([]float64(nil), p...)
	floats.Sub(out, b.lo)
	floats.Div(out, b.width)

	return out
}

// FromUnit maps p from [0,1]^d back into box coordinates:
// out_i = lo_i + (up_i − lo_i) * p_i.
//
// Round-trip guarantee: FromUnit(ToUnit(p)) == p within floating-point
// tolerance for any p of matching length.
//
// Complexity: O(d) time, O(d) space.
func (b Box) FromUnit(p []float64) []float64 {
	out := append([]float64(nil), p...)
	floats.Mul(out, b.width)
	floats.Add(out, b.lo)

	return out
}

// ToUnitBatch applies ToUnit to every point in set, preserving order.
//
// Complexity: O(|set|·d).
func (b Box) ToUnitBatch(set [][]float64) [][]float64 {
	out := make([][]float64, len(set))
	for i, p := range set {
		out[i] = b.ToUnit(p)
	}

	return out
}

// FromUnitBatch applies FromUnit to every point in set, preserving order.
//
// Complexity: O(|set|·d).
func (b Box) FromUnitBatch(set [][]float64) [][]float64 {
	out := make([][]float64, len(set))
	for i, p := range set {
		out[i] = b.FromUnit(p)
	}

	return out
}

// Intervals exports the bounds as per-axis r1.Interval values in axis
// order, ready for gonum samplers such as distmv.NewUniform.
//
// Complexity: O(d) time, O(d) space.
func (b Box) Intervals() []r1.Interval {
	out := make([]r1.Interval, len(b.lo))
	for i := range b.lo {
		out[i] = r1.Interval{Min: b.lo[i], Max: b.up[i]}
	}

	return out
}
