// Package sequential - the greedy sequential design generator.
//
// State machine: Uninitialized → Active(k) → Exhausted.
//   - The first step prepares the seeds (lazily) and emits either the first
//     seed or the lower corner of the box.
//   - Step k replays the next unused seed when one remains, otherwise spawns
//     min(k·SpawnFactor, MaxRandPoints) uniform candidates and keeps the
//     best-scoring one (ties broken by earliest spawn order, deterministic
//     given the random stream).
//   - With a finite budget the generator exhausts after exactly NPoints
//     emissions; unbounded generators never exhaust and the caller stops.
//
// Design principles:
//   - Immutable configuration plus explicit per-instance state: the accepted
//     unit-cube points live in the Generator, never inside shared options,
//     so independent runs and goroutine-parallel instances cannot interfere.
//   - Iteration never fails under a valid configuration; completion is the
//     (nil, false) end-of-sequence signal, not an error.
package sequential

import (
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/manuelbb-upb/pointsampler/vecspace"
)

// Generator lazily produces design points in original box coordinates.
// Obtain one via New; the zero value is not usable. A Generator is not
// goroutine-safe: run one per goroutine, each with its own random stream.
type Generator struct {
	cfg  config
	box  vecspace.Box  // the caller's design box
	unit []r1.Interval // [0,1]^d intervals backing the candidate sampler
	sc   scorer

	sampler *distmv.Uniform // uniform candidate source over the unit cube

	seeds    [][]float64 // prepared unit-cube seeds; built on first Next
	prepared bool

	history   [][]float64 // accepted points, unit-cube space, append-only
	exhausted bool

	buf []float64 // candidate scratch, reused across spawns
}

// New validates the configuration and returns a ready Generator. Rejection
// is immediate and total: on error no generator is produced.
//
// Errors: sentinels from types.go and the vecspace bound sentinels.
//
// Complexity: O(d + |seeds|) validation; no candidate work happens here.
func New(dims int, opts ...Option) (*Generator, error) {
	cfg := gatherOptions(dims, opts...)

	box, err := validateConfig(cfg)
	if err != nil {
		return nil, err
	}

	// Deep-copy the seed points so later caller mutations cannot reach the
	// lazily prepared state.
	if len(cfg.seeds) > 0 {
		owned := make([][]float64, len(cfg.seeds))
		for i, s := range cfg.seeds {
			owned[i] = append([]float64(nil), s...)
		}
		cfg.seeds = owned
	}

	unit, err := vecspace.UnitBox(dims)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:  cfg,
		box:  box,
		unit: unit.Intervals(),
		sc:   scorer{dims: dims, thresholdFactor: cfg.thresholdFactor},
		buf:  make([]float64, dims),
	}
	g.sampler = distmv.NewUniform(g.unit, sourceFromSeed(cfg.seed))

	return g, nil
}

// Next produces the next design point in original box coordinates.
// It returns (nil, false) once a finite budget is spent; unbounded
// generators always return (point, true) and the caller bounds the loop.
//
// Complexity: O(1) while seeds remain, then O(k·SpawnFactor·k·d) at step k.
func (g *Generator) Next() ([]float64, bool) {
	if g.exhausted {
		return nil, false
	}
	if !g.cfg.unbounded && len(g.history) >= g.cfg.nPoints {
		g.exhausted = true

		return nil, false
	}

	if !g.prepared {
		g.seeds = prepareSeeds(g.cfg.seeds, g.box, g.cfg.cleanSeeds)
		g.prepared = true
	}

	var next []float64
	switch n := len(g.history); {
	case n < len(g.seeds):
		// Replay phase: seeds lead the design verbatim, no randomness.
		next = append([]float64(nil), g.seeds[n]...)
	case n == 0:
		// Empty design, no seeds: start at the unit-cube origin, which maps
		// to the lower corner of the box.
		next = make([]float64, g.cfg.dims)
	default:
		next = g.spawnBest()
	}

	g.history = append(g.history, next)

	return g.box.FromUnit(next), true
}

// spawnBest draws the candidate batch for the current step and returns the
// highest-scoring unit-cube point. Ties keep the earliest candidate.
//
// Contract: len(g.history) ≥ 1.
func (g *Generator) spawnBest() []float64 {
	n := len(g.history)

	// num = min(n·SpawnFactor, MaxRandPoints), overflow-safe.
	num := g.cfg.maxRandPoints
	if n <= g.cfg.maxRandPoints/g.cfg.spawnFactor {
		if v := n * g.cfg.spawnFactor; v < num {
			num = v
		}
	}

	var (
		best      []float64
		bestScore float64
		score     float64
	)
	for i := 0; i < num; i++ {
		g.sampler.Rand(g.buf)
		score = g.sc.score(g.buf, g.history)
		// Strict > keeps the earliest spawn on ties.
		if best == nil || score > bestScore {
			best = append(best[:0], g.buf...)
			bestScore = score
		}
	}

	return best
}

// Points drains up to limit points into a fresh slice. limit ≤ 0 drains to
// exhaustion and must only be used with finite budgets.
func (g *Generator) Points(limit int) [][]float64 {
	var out [][]float64
	for limit <= 0 || len(out) < limit {
		p, ok := g.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}

	return out
}

// Reset restarts the generator from scratch: the accepted design is cleared
// and the random stream is re-derived from the configured seed, so the next
// drain replays the identical sequence.
func (g *Generator) Reset() {
	g.history = g.history[:0]
	g.exhausted = false
	g.prepared = false
	g.seeds = nil
	g.sampler = distmv.NewUniform(g.unit, sourceFromSeed(g.cfg.seed))
}

// Count returns the number of points emitted so far, seeds included.
func (g *Generator) Count() int { return len(g.history) }

// Dims returns the design dimensionality.
func (g *Generator) Dims() int { return g.cfg.dims }

// Box returns the validated design hyperrectangle.
func (g *Generator) Box() vecspace.Box { return g.box }
