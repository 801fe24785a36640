package matrix

import "errors"

// Sentinel errors for the matrix package. Kernels return these (optionally
// wrapped with operation context via fmt.Errorf("...: %w", err)); callers
// match with errors.Is. No kernel panics on user-triggered conditions.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. a vector whose length differs from the column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but not supplied.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a zero pivot is encountered during LU or
	// inversion. The scheme does not pivot, by design, so near-singular
	// inputs are the caller's problem to detect upstream.
	ErrSingular = errors.New("matrix: singular matrix")
)
