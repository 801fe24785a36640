package hopfield

import (
	"fmt"

	"github.com/katalvlaran/netdyn/matrix"
)

// OverlapMatrix computes the P×P matrix of pairwise pattern overlaps
// m[α][β] = (ξ_α·ξ_β)/N. The diagonal is 1 for bipolar patterns; large
// off-diagonal magnitudes flag interference that Hebbian training cannot
// separate (and that makes the pseudo-inverse overlap matrix
// ill-conditioned). Symmetric, computed once per unordered pair.
//
// An empty pattern set yields (nil, nil). Patterns must all share one
// length; N is taken from the first pattern.
//
// Errors: ErrDimensionMismatch (ragged input).
// Complexity: O(P²·N).
func OverlapMatrix(patterns [][]float64) (*matrix.Dense, error) {
	p := len(patterns)
	if p == 0 {
		return nil, nil
	}
	n := len(patterns[0])
	if n == 0 {
		return nil, fmt.Errorf("hopfield: overlap of empty patterns: %w", ErrDimensionMismatch)
	}
	for idx, pat := range patterns {
		if len(pat) != n {
			return nil, fmt.Errorf("hopfield: pattern %d has length %d, want %d: %w", idx, len(pat), n, ErrDimensionMismatch)
		}
	}

	out, err := matrix.NewDense(p, p)
	if err != nil {
		return nil, fmt.Errorf("hopfield: overlap allocation: %w", ErrDimensionMismatch)
	}
	nf := float64(n)
	for alpha := 0; alpha < p; alpha++ {
		for beta := alpha; beta < p; beta++ {
			var dot float64
			for i := 0; i < n; i++ {
				dot += patterns[alpha][i] * patterns[beta][i]
			}
			ov := dot / nf
			out.Row(alpha)[beta] = ov
			if alpha != beta {
				out.Row(beta)[alpha] = ov
			}
		}
	}

	return out, nil
}

// OverlapHistogram bins the absolute off-diagonal entries of an overlap
// matrix into `bins` equal-width buckets over [0,1]; an overlap of exactly
// 1 lands in the last bucket. Useful as a one-glance capacity diagnostic:
// mass near zero means well-separated patterns.
//
// A nil matrix (no patterns) yields (nil, nil); bins must be positive.
//
// Errors: ErrDimensionMismatch (non-positive bins).
// Complexity: O(P²).
func OverlapHistogram(overlaps *matrix.Dense, bins int) ([]int, error) {
	if overlaps == nil {
		return nil, nil
	}
	if bins <= 0 {
		return nil, fmt.Errorf("hopfield: histogram needs bins > 0, got %d: %w", bins, ErrDimensionMismatch)
	}

	counts := make([]int, bins)
	p := overlaps.Rows()
	width := 1.0 / float64(bins)
	for alpha := 0; alpha < p; alpha++ {
		row := overlaps.Row(alpha)
		for beta := 0; beta < p; beta++ {
			if alpha == beta {
				continue
			}
			v := row[beta]
			if v < 0 {
				v = -v
			}
			idx := int(v / width)
			if idx >= bins { // clamp |overlap| == 1.0 into the top bucket
				idx = bins - 1
			}
			counts[idx]++
		}
	}

	return counts, nil
}
