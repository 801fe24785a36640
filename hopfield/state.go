package hopfield

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Glyphs used by FormatStateGrid.
const (
	glyphPlus  = '█'
	glyphMinus = '·'
)

// ApplyNoise returns a copy of state with each component sign-flipped with
// probability level. The input is not mutated. Consumes exactly one
// Float64 draw per component regardless of level, so noisy and clean probes
// built from the same seed stay stream-aligned.
//
// level ≤ 0 flips nothing; level ≥ 1 flips everything.
// Complexity: O(N).
func ApplyNoise(state []float64, level float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(state))
	for i, v := range state {
		if rng.Float64() < level {
			out[i] = -v
		} else {
			out[i] = v
		}
	}

	return out
}

// FormatStateGrid renders a bipolar state as a √N×√N character grid,
// one '█' per +1 and one '·' per −1, rows separated by newlines. The
// state length must be a perfect square.
//
// Errors: ErrInvalidStateValue (non-bipolar entry), ErrNotPerfectSquare.
// Complexity: O(N).
func FormatStateGrid(state []float64) (string, error) {
	for i, v := range state {
		if v != 1.0 && v != -1.0 {
			return "", fmt.Errorf("hopfield: state[%d] = %v: %w", i, v, ErrInvalidStateValue)
		}
	}
	n := len(state)
	side := int(math.Sqrt(float64(n)))
	if side*side != n {
		return "", fmt.Errorf("hopfield: state length %d: %w", n, ErrNotPerfectSquare)
	}

	var b strings.Builder
	b.Grow(n + side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if state[y*side+x] == 1.0 {
				b.WriteRune(glyphPlus)
			} else {
				b.WriteRune(glyphMinus)
			}
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}
