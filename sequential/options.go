// Package sequential - functional configuration for the design generator.
//
// Design principles:
//   - Documented Default* constants are the single source of truth for
//     zero-value behavior.
//   - Option setters are plain writers; all validation happens once, in
//     New, with sentinel errors (no panics on user input).
//   - The resolved config is immutable: New deep-copies every slice it
//     receives, so callers may reuse or mutate their inputs freely.
package sequential

import "math"

// Defaults - single source of truth for the generator configuration.
const (
	// DefaultNPointsPerDim sets the finite budget to 100·dims when the
	// caller neither fixes a budget nor opts into an unbounded design.
	DefaultNPointsPerDim = 100

	// DefaultSpawnFactor controls how many candidates are spawned per
	// accepted point: step k draws up to k·SpawnFactor candidates.
	DefaultSpawnFactor = 100

	// DefaultMaxRandPoints caps the candidate batch size per step.
	DefaultMaxRandPoints = math.MaxInt

	// DefaultThresholdFactor scales the projected-distance threshold
	// τ = 2·ThresholdFactor/N applied at step N.
	DefaultThresholdFactor = 0.5

	// DefaultCleanSeeds drops caller seeds outside the box before use.
	DefaultCleanSeeds = true
)

// Option mutates the internal configuration. Setters are applied in order
// with last-writer-wins semantics; New validates the final state.
type Option func(*config)

// config stores the effective configuration after applying Option setters.
// It is unexported to prevent external mutation; the public entry points
// accept ...Option and resolve them via gatherOptions.
type config struct {
	dims int // copied from the New argument for validation in one place

	nPoints    int  // finite budget; meaningful iff nPointsSet && !unbounded
	nPointsSet bool // true when WithNPoints was applied
	unbounded  bool // true when WithUnbounded was applied

	lo []float64 // lower bounds; nil ⇒ zeros(dims)
	up []float64 // upper bounds; nil ⇒ ones(dims)

	seeds      [][]float64 // caller seed points, original coordinates
	cleanSeeds bool        // DefaultCleanSeeds

	spawnFactor     int     // DefaultSpawnFactor
	maxRandPoints   int     // DefaultMaxRandPoints
	thresholdFactor float64 // DefaultThresholdFactor

	seed uint64 // RNG seed; 0 ⇒ fixed default stream (see rng.go)
}

// WithNPoints fixes a finite point budget. n==0 is legal and produces an
// immediately exhausted generator. Overrides a prior WithUnbounded.
func WithNPoints(n int) Option {
	return func(c *config) {
		c.nPoints = n
		c.nPointsSet = true
		c.unbounded = false
	}
}

// WithUnbounded removes the point budget: the generator never exhausts and
// the caller bounds the drain. Overrides a prior WithNPoints.
func WithUnbounded() Option {
	return func(c *config) {
		c.unbounded = true
		c.nPointsSet = false
	}
}

// WithBounds sets the design hyperrectangle [lo, up]. Defaults to the unit
// hypercube. Validated in New via vecspace.NewBox (finite, lo_i < up_i).
func WithBounds(lo, up []float64) Option {
	return func(c *config) {
		c.lo = lo
		c.up = up
	}
}

// WithSeedPoints supplies points that lead the design in their given order
// before any random generation happens. Each must have length dims.
func WithSeedPoints(seeds [][]float64) Option {
	return func(c *config) { c.seeds = seeds }
}

// WithCleanSeeds drops seeds outside the box before use (the default).
func WithCleanSeeds() Option {
	return func(c *config) { c.cleanSeeds = true }
}

// WithNoCleanSeeds keeps every seed, scaling out-of-box seeds into the
// design as-is. Their unit-cube images then fall outside [0,1]^d.
func WithNoCleanSeeds() Option {
	return func(c *config) { c.cleanSeeds = false }
}

// WithSpawnFactor overrides the per-step candidate multiplier (must be > 0).
func WithSpawnFactor(f int) Option {
	return func(c *config) { c.spawnFactor = f }
}

// WithMaxRandPoints caps the candidate batch size per step (must be > 0).
func WithMaxRandPoints(n int) Option {
	return func(c *config) { c.maxRandPoints = n }
}

// WithThresholdFactor overrides the projected-distance threshold factor
// (must be ≥ 0; 0 disables clamping entirely).
func WithThresholdFactor(t float64) Option {
	return func(c *config) { c.thresholdFactor = t }
}

// WithRandomSeed fixes the candidate-spawning random stream. Seed 0 (the
// default) selects a fixed internal stream, so unseeded generators are
// still deterministic.
func WithRandomSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// gatherOptions resolves setters against the documented defaults.
//
// Complexity: O(k) for k options.
func gatherOptions(dims int, opts ...Option) config {
	c := config{
		dims:            dims,
		cleanSeeds:      DefaultCleanSeeds,
		spawnFactor:     DefaultSpawnFactor,
		maxRandPoints:   DefaultMaxRandPoints,
		thresholdFactor: DefaultThresholdFactor,
	}
	for _, set := range opts {
		set(&c)
	}
	if !c.nPointsSet && !c.unbounded && dims > 0 {
		c.nPoints = DefaultNPointsPerDim * dims
	}

	return c
}
