package hopfield

import "errors"

// Sentinel errors for hopfield operations. Operations wrap these with
// context via fmt.Errorf("...: %w", err); match with errors.Is.
var (
	// ErrDimensionMismatch indicates a state or pattern of the wrong length,
	// or a singular overlap matrix during pseudo-inverse training (the
	// historical naming quirk: the inversion failed, not the dimensions —
	// such errors also carry matrix.ErrSingular in their chain).
	ErrDimensionMismatch = errors.New("hopfield: dimension mismatch")

	// ErrInvalidStateValue indicates a state component that is not exactly
	// +1.0 or -1.0.
	ErrInvalidStateValue = errors.New("hopfield: state value is not +1 or -1")

	// ErrNotPerfectSquare indicates a state whose length has no integer
	// square root; grid-shaped rendering needs a perfect square.
	ErrNotPerfectSquare = errors.New("hopfield: state length is not a perfect square")
)
