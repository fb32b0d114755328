package sequential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelbb-upb/pointsampler/vecspace"
)

// TestCleanSeeds_OrderPreserved filters a mixed list against a tight box
// and expects the surviving subsequence in its original order.
func TestCleanSeeds_OrderPreserved(t *testing.T) {
	box, err := vecspace.NewBox([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	seeds := [][]float64{
		{0.5, 0.5},
		{1.5, 0.5}, // out on axis 0
		{0.9, 0.1},
		{0.5, -2}, // out on axis 1
		{0, 1},    // boundary: kept
	}

	got := cleanSeeds(seeds, box)
	assert.Equal(t, [][]float64{{0.5, 0.5}, {0.9, 0.1}, {0, 1}}, got)
}

// TestPrepareSeeds_ScalesIntoUnitCube checks cleaning plus unit mapping on a
// non-unit box.
func TestPrepareSeeds_ScalesIntoUnitCube(t *testing.T) {
	box, err := vecspace.NewBox([]float64{0, 0}, []float64{2, 4})
	require.NoError(t, err)

	seeds := [][]float64{
		{1, 2},  // center → (0.5, 0.5)
		{5, 5},  // outside → dropped when cleaning
		{2, 0},  // corner → (1, 0)
	}

	got := prepareSeeds(seeds, box, true)
	assert.Equal(t, [][]float64{{0.5, 0.5}, {1, 0}}, got)
}

// TestPrepareSeeds_NoCleanScalesEverything verifies clean=false keeps the
// out-of-box seed, whose unit image then escapes [0,1]^d.
func TestPrepareSeeds_NoCleanScalesEverything(t *testing.T) {
	box, err := vecspace.NewBox([]float64{0, 0}, []float64{2, 4})
	require.NoError(t, err)

	seeds := [][]float64{{4, -4}}
	got := prepareSeeds(seeds, box, false)

	require.Len(t, got, 1)
	assert.Equal(t, []float64{2, -1}, got[0], "uncleaned seeds scale without clamping")
}

// TestPrepareSeeds_Empty keeps the degenerate cases total.
func TestPrepareSeeds_Empty(t *testing.T) {
	box, err := vecspace.UnitBox(2)
	require.NoError(t, err)

	assert.Empty(t, prepareSeeds(nil, box, true))
	assert.Empty(t, prepareSeeds([][]float64{}, box, false))
}
