// Package sequential - eager convenience wrappers over Generator.
package sequential

import (
	"gonum.org/v1/gonum/mat"
)

// Design constructs a generator and collects exactly nPoints design points,
// semantically identical to draining New(dims, opts…, WithNPoints(nPoints)).
// The budget argument wins over any WithNPoints/WithUnbounded among opts.
//
// Errors: the New sentinels (ErrNegativeNPoints when nPoints < 0, etc.).
//
// Complexity: dominated by generation, O(nPoints²·SpawnFactor·d) overall.
func Design(nPoints, dims int, opts ...Option) ([][]float64, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithNPoints(nPoints))

	g, err := New(dims, all...)
	if err != nil {
		return nil, err
	}

	return g.Points(0), nil
}

// DesignMatrix collects a finite design into a dense nPoints×dims matrix,
// one point per row, for direct handoff to gonum-based surrogate models.
// An empty design has no matrix representation: nPoints==0 yields (nil, nil).
//
// Complexity: as Design, plus O(nPoints·d) for the copy into the matrix.
func DesignMatrix(nPoints, dims int, opts ...Option) (*mat.Dense, error) {
	pts, err := Design(nPoints, dims, opts...)
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, nil
	}

	m := mat.NewDense(nPoints, dims, nil)
	for i, p := range pts {
		m.SetRow(i, p)
	}

	return m, nil
}
