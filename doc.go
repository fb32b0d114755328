// Package pointsampler generates space-filling point designs inside an
// n-dimensional hyperrectangle — the classic warm start for
// surrogate-model-based optimization.
//
// 🚀 What is pointsampler?
//
//	A small, deterministic library that builds designs point by point:
//		• Sequential greedy generation: each new point maximizes a blended
//		  intersite / projected-distance score among random candidates
//		• Seed support: caller-supplied points lead the design, optionally
//		  filtered against the box
//		• Scale-invariant scoring: everything happens in the unit hypercube,
//		  outputs are mapped back to the original bounds
//
// ✨ Why choose pointsampler?
//
//   - Reproducible – explicit, seedable randomness; no hidden globals
//   - Safe by construction – configuration is validated once, up front
//   - Lazy or eager – drain a generator point by point, or collect a whole
//     design (slice or gonum matrix) in one call
//
// Everything is organized under two subpackages:
//
//	vecspace/   — distance and projected-distance primitives + the Box
//	              affine mapping between a hyperrectangle and [0,1]^d
//	sequential/ — the greedy sequential design generator and its options
//
// Quick sketch (dims=2, five points):
//
//	    ub ┌──────·──┐
//	       │ ·       │
//	       │     ·   │
//	       │ ·       │
//	    lb └·────────┘
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/manuelbb-upb/pointsampler
package pointsampler
