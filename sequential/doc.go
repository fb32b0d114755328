// Package sequential builds space-filling point designs one point at a
// time inside an n-dimensional hyperrectangle.
//
// What:
//
//   - Generator: a lazy, restartable producer of design points. Starting
//     from optional caller-supplied seed points, each further point is the
//     best of a batch of uniformly spawned candidates, scored by a blend of
//     intersite distance (how far from every accepted point) and
//     thresholded projected distance (how far along the closest single
//     axis).
//   - Design / DesignMatrix: eager wrappers collecting a whole finite
//     design into a [][]float64 or a gonum *mat.Dense.
//
// Why:
//
//   - Surrogate-model-based optimization needs initial samples that cover
//     the search box without clustering; a greedy maximin-style sequence
//     delivers that incrementally, so callers can stop at any budget.
//
// How it runs:
//
//  1. New validates the whole configuration up front (sentinel errors, no
//     partially built generator).
//  2. On the first Next call, seeds are filtered against the box (unless
//     disabled) and mapped into [0,1]^d. With no seeds, the design starts
//     at the lower corner.
//  3. Every later Next either replays the next unused seed or spawns
//     min(N·SpawnFactor, MaxRandPoints) uniform candidates and keeps the
//     highest-scoring one. All scoring happens in the unit hypercube;
//     emitted points are mapped back to the original bounds.
//
// Determinism:
//
//   - Randomness comes from an explicit, per-generator seedable source
//     (seed 0 selects a fixed default stream). Same configuration + same
//     seed ⇒ identical sequences, across Reset and across instances.
//   - A Generator is single-goroutine by construction; run independent
//     instances for parallel designs, each with its own stream.
//
// Complexity:
//
//   - Step k (past the seeds): O(k·SpawnFactor · k·d) — each candidate is
//     scored against all k accepted points.
//
// Errors:
//
//   - ErrNonPositiveDims, ErrNegativeNPoints, ErrSeedDimension,
//     ErrNonPositiveSpawnFactor, ErrNonPositiveMaxRand,
//     ErrNegativeThreshold, plus the bound sentinels forwarded from
//     vecspace (ErrInvertedBounds, ErrDegenerateAxis, …).
//
// See example_test.go for runnable scenarios.
package sequential
