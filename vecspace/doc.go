// Package vecspace provides the numeric primitives behind space-filling
// designs: Euclidean and projected distances over real vectors, and the
// Box affine mapping between an n-dimensional hyperrectangle and the unit
// hypercube [0,1]^d.
//
// What:
//
//   - Distance / Distances: Euclidean norm of p−q, pointwise against a set.
//   - ProjectedDistance / ProjectedDistances: smallest single-axis
//     separation |p_i − q_i|, a proxy preventing two points from collapsing
//     onto each other along any one projection.
//   - ProjectedDistancesThresholded: as above with values strictly below a
//     threshold clamped to zero.
//   - Box: validated [lo,up] bounds with lossless (up to rounding) ToUnit /
//     FromUnit scaling, batch forms, membership tests, and r1.Interval
//     export for gonum samplers.
//
// Why:
//
//   - Scoring candidates in [0,1]^d keeps the greedy design generator
//     scale-invariant; callers still see points in their original bounds.
//
// Contracts:
//
//   - The distance helpers are pure and allocation-lean; they assume equal
//     vector lengths (enforced once at the Box/config boundary, not per call).
//   - Box is immutable after construction; accessors return copies.
//
// Complexity:
//
//   - Distance, ProjectedDistance: O(d).
//   - The *s set forms: O(|S|·d).
//   - Box scaling: O(d) per point, O(|S|·d) for batches.
//
// Errors:
//
//   - ErrDimensionMismatch: lo/up lengths differ or are zero.
//   - ErrNonFiniteBound: a bound is NaN or ±Inf.
//   - ErrInvertedBounds: lo_i > up_i for some axis.
//   - ErrDegenerateAxis: lo_i == up_i (zero width ⇒ unscalable axis).
package vecspace
