package matrix

import "fmt"

// validatorErrorf tags a sentinel with the validator that raised it, keeping
// a stable "Tag: underlying" shape and errors.Is compatibility.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is square (Rows == Cols).
// Assumes m is non-nil; callers validate that first.
// Returns ErrNonSquare otherwise. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly length n.
// Returns ErrNilMatrix for nil input, ErrDimensionMismatch on length
// mismatch. Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
