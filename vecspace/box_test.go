package vecspace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelbb-upb/pointsampler/vecspace"
)

// TestNewBox_Validation walks every rejection path with its sentinel.
func TestNewBox_Validation(t *testing.T) {
	_, err := vecspace.NewBox(nil, nil)
	assert.ErrorIs(t, err, vecspace.ErrDimensionMismatch, "empty bounds must be rejected")

	_, err = vecspace.NewBox([]float64{0, 0}, []float64{1})
	assert.ErrorIs(t, err, vecspace.ErrDimensionMismatch, "length mismatch must be rejected")

	_, err = vecspace.NewBox([]float64{0, math.NaN()}, []float64{1, 1})
	assert.ErrorIs(t, err, vecspace.ErrNonFiniteBound, "NaN bound must be rejected")

	_, err = vecspace.NewBox([]float64{0, 0}, []float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, vecspace.ErrNonFiniteBound, "infinite bound must be rejected")

	_, err = vecspace.NewBox([]float64{2, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, vecspace.ErrInvertedBounds, "lo>up must be rejected")

	_, err = vecspace.NewBox([]float64{0, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, vecspace.ErrDegenerateAxis, "zero-width axis must be rejected at construction")
}

// TestBox_RoundTrip checks FromUnit(ToUnit(p)) == p within floating-point
// tolerance for points inside, on, and outside the box.
func TestBox_RoundTrip(t *testing.T) {
	box, err := vecspace.NewBox([]float64{-2, 0.5, 10}, []float64{3, 0.75, 11})
	require.NoError(t, err)

	points := [][]float64{
		{-2, 0.5, 10},    // lower corner
		{3, 0.75, 11},    // upper corner
		{0, 0.6, 10.25},  // interior
		{7, -1, 99},      // far outside: scaling is affine, not clamping
		{-2.5, 0.5, 10},  // below on one axis
	}
	for _, p := range points {
		back := box.FromUnit(box.ToUnit(p))
		for i := range p {
			assert.InDelta(t, p[i], back[i], 1e-9, "round-trip must reproduce coordinate %d of %v", i, p)
		}
	}
}

// TestBox_ToUnitCorners pins the affine map: lower corner → origin, upper
// corner → ones.
func TestBox_ToUnitCorners(t *testing.T) {
	box, err := vecspace.NewBox([]float64{-1, 4}, []float64{1, 8})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0}, box.ToUnit([]float64{-1, 4}), "lower corner maps to the origin")
	assert.Equal(t, []float64{1, 1}, box.ToUnit([]float64{1, 8}), "upper corner maps to ones")
	assert.Equal(t, []float64{0.5, 0.5}, box.ToUnit([]float64{0, 6}), "center maps to the cube center")
}

// TestBox_Batch verifies the batch forms apply pointwise and preserve order.
func TestBox_Batch(t *testing.T) {
	box, err := vecspace.NewBox([]float64{0}, []float64{2})
	require.NoError(t, err)

	unit := box.ToUnitBatch([][]float64{{2}, {0}, {1}})
	assert.Equal(t, [][]float64{{1}, {0}, {0.5}}, unit, "ToUnitBatch preserves order")

	back := box.FromUnitBatch(unit)
	assert.Equal(t, [][]float64{{2}, {0}, {1}}, back, "FromUnitBatch inverts ToUnitBatch")
}

// TestBox_Contains covers membership including boundary points and wrong
// lengths.
func TestBox_Contains(t *testing.T) {
	box, err := vecspace.NewBox([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	assert.True(t, box.Contains([]float64{0, 1}), "boundary points are contained")
	assert.True(t, box.Contains([]float64{0.5, 0.5}), "interior points are contained")
	assert.False(t, box.Contains([]float64{0.5, 1.5}), "outside on one axis is not contained")
	assert.False(t, box.Contains([]float64{0.5}), "wrong length is never contained")
}

// TestBox_Immutable ensures accessors return copies and the constructor
// does not alias caller slices.
func TestBox_Immutable(t *testing.T) {
	lo := []float64{0, 0}
	up := []float64{1, 1}
	box, err := vecspace.NewBox(lo, up)
	require.NoError(t, err)

	lo[0] = 99
	assert.Equal(t, []float64{0, 0}, box.Lo(), "constructor must copy its inputs")

	got := box.Up()
	got[0] = -5
	assert.Equal(t, []float64{1, 1}, box.Up(), "accessors must return copies")
}

// TestBox_Intervals checks the r1.Interval export keeps axis order and
// bound values.
func TestBox_Intervals(t *testing.T) {
	box, err := vecspace.NewBox([]float64{-1, 2}, []float64{1, 5})
	require.NoError(t, err)

	iv := box.Intervals()
	require.Len(t, iv, 2)
	assert.Equal(t, -1.0, iv[0].Min)
	assert.Equal(t, 1.0, iv[0].Max)
	assert.Equal(t, 2.0, iv[1].Min)
	assert.Equal(t, 5.0, iv[1].Max)
}

// TestUnitBox pins the convenience constructor and its only failure mode.
func TestUnitBox(t *testing.T) {
	box, err := vecspace.UnitBox(3)
	require.NoError(t, err)
	assert.Equal(t, 3, box.Dims())
	assert.Equal(t, []float64{0, 0, 0}, box.Lo())
	assert.Equal(t, []float64{1, 1, 1}, box.Up())

	_, err = vecspace.UnitBox(0)
	assert.ErrorIs(t, err, vecspace.ErrDimensionMismatch, "dims must be positive")
}
