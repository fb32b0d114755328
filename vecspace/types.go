package vecspace

import "errors"

// Sentinel errors for Box construction. Validation happens once, in NewBox;
// the scaling and distance helpers never raise on their own.
var (
	// ErrDimensionMismatch indicates lo/up have differing or zero lengths.
	ErrDimensionMismatch = errors.New("vecspace: bound vectors must have equal, positive length")
	// ErrNonFiniteBound indicates a NaN or ±Inf bound entry.
	ErrNonFiniteBound = errors.New("vecspace: bounds must be finite")
	// ErrInvertedBounds indicates lo_i > up_i on some axis.
	ErrInvertedBounds = errors.New("vecspace: lower bound exceeds upper bound")
	// ErrDegenerateAxis indicates lo_i == up_i on some axis: the box has zero
	// width there and cannot be mapped onto [0,1].
	ErrDegenerateAxis = errors.New("vecspace: zero-width axis cannot be scaled")
)
