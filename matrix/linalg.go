package matrix

import "fmt"

// Operation tags for unified error wrapping.
const (
	opMatVec  = "MatVec"
	opLU      = "LU"
	opInverse = "Inverse"
)

// kernelErrorf wraps err with an operation tag, preserving the sentinel
// for errors.Is. Only call with err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order, one pass per row over flat storage.
// Complexity: O(r*c) time, O(r) space for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var acc float64
	var base int
	for i := 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j := 0; j < m.c; j++ {
			if xv := x[j]; xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// LU computes the Doolittle factorization m = L·U with unit diagonal on L,
// without pivoting.
//
// No pivoting keeps the factorization deterministic; the trade-off is that
// a zero pivot aborts with ErrSingular even for matrices a pivoting scheme
// could handle. The input is never mutated.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) space.
func LU(m *Dense) (l, u *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, kernelErrorf(opLU, err)
	}
	if err = ValidateSquare(m); err != nil {
		return nil, nil, kernelErrorf(opLU, err)
	}

	n := m.r
	if l, err = NewDense(n, n); err != nil {
		return nil, nil, kernelErrorf(opLU, err)
	}
	if u, err = NewDense(n, n); err != nil {
		return nil, nil, kernelErrorf(opLU, err)
	}
	// Unit lower-triangular diagonal.
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	var i, j, k, baseI, baseJ int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		baseI = i * n
		// Row i of U for j >= i.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = m.data[baseI+j] - sum
		}

		pivot = u.data[baseI+i]
		if pivot == 0 {
			return nil, nil, kernelErrorf(opLU, ErrSingular)
		}

		// Column i of L for j > i.
		for j = i + 1; j < n; j++ {
			sum = 0
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (m.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse computes m⁻¹ via LU factorization and per-column triangular
// solves. The input must be non-nil and square and is never mutated.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (zero pivot during
// factorization or backward substitution).
// Complexity: O(n³) time, O(n²) space.
func Inverse(m *Dense) (*Dense, error) {
	l, u, err := LU(m)
	if err != nil {
		// LU already carries its own tag; add the facade tag on top so the
		// failure reads "Inverse: LU: matrix: singular matrix".
		return nil, kernelErrorf(opInverse, err)
	}

	n := m.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, kernelErrorf(opInverse, err)
	}

	var (
		col, i, k, base int
		sum, pivot      float64
		y               = make([]float64, n) // forward-substitution workspace
		x               = make([]float64, n) // backward-substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward solve L·y = e_col, top-down.
		for i = 0; i < n; i++ {
			sum = 0
			base = i * n
			for k = 0; k < i; k++ {
				sum += l.data[base+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward solve U·x = y, bottom-up.
		for i = n - 1; i >= 0; i-- {
			sum = 0
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += u.data[base+k] * x[k]
			}
			pivot = u.data[base+i]
			if pivot == 0 {
				return nil, kernelErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Column col of the inverse.
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
