package hopfield

import (
	"fmt"

	"github.com/katalvlaran/netdyn/matrix"
)

// Train rebuilds the weight matrix from the given bipolar patterns using
// the selected rule. Existing weights are reset to zero first — training is
// a full replacement, never an incremental update, so calling Train twice
// with the same input yields identical weights.
//
// An empty pattern set is not an error: a warning is logged and the weights
// stay zeroed. Every pattern is validated before any weight is written.
//
// For PseudoInverse, the P×P overlap matrix C[α][β] = (ξ_α·ξ_β)/N is built
// once per unordered pair and inverted; a singular C (e.g. duplicate
// patterns) fails with ErrDimensionMismatch (carrying matrix.ErrSingular in
// the chain) and leaves the weights zeroed — retrain before using the
// network.
//
// Complexity: Hebbian O(P·N²); PseudoInverse O(P²·N + P³ + N²·P).
func (h *Network) Train(patterns [][]float64, rule TrainingRule) error {
	h.weights.Zero()

	if len(patterns) == 0 {
		h.log.Warn("training with an empty pattern set; weights left zeroed")
		return nil
	}
	for _, p := range patterns {
		if err := h.validateState(p); err != nil {
			return err
		}
	}

	switch rule {
	case PseudoInverse:
		return h.trainPseudoInverse(patterns)
	default:
		h.trainHebbian(patterns)
		return nil
	}
}

// trainHebbian accumulates the outer-product sum over all patterns,
// skipping the diagonal.
func (h *Network) trainHebbian(patterns [][]float64) {
	for _, p := range patterns {
		for i := 0; i < h.n; i++ {
			row := h.weights.Row(i)
			pi := p[i]
			for j := 0; j < h.n; j++ {
				if i == j {
					continue
				}
				row[j] += pi * p[j]
			}
		}
	}
}

// trainPseudoInverse computes W[i][j] = Σ_{α,β} ξ_α[i]·C⁻¹[α][β]·ξ_β[j]
// for i≠j, where C is the pattern-overlap matrix.
func (h *Network) trainPseudoInverse(patterns [][]float64) error {
	p := len(patterns)
	overlap, err := matrix.NewDense(p, p)
	if err != nil {
		return fmt.Errorf("hopfield: overlap allocation: %w", ErrDimensionMismatch)
	}

	// C[α][β] = (ξ_α·ξ_β)/N, symmetric: compute once per unordered pair.
	nf := float64(h.n)
	for alpha := 0; alpha < p; alpha++ {
		for beta := alpha; beta < p; beta++ {
			var dot float64
			for i := 0; i < h.n; i++ {
				dot += patterns[alpha][i] * patterns[beta][i]
			}
			ov := dot / nf
			overlap.Row(alpha)[beta] = ov
			if alpha != beta {
				overlap.Row(beta)[alpha] = ov
			}
		}
	}

	inv, err := matrix.Inverse(overlap)
	if err != nil {
		// The historical error class here is DimensionMismatch even though
		// the inversion, not a shape, failed; keep both sentinels matchable.
		return fmt.Errorf(
			"hopfield: overlap matrix is singular, cannot compute pseudo-inverse (try the Hebbian rule or different patterns): %w: %w",
			ErrDimensionMismatch, err)
	}

	// s[β] = Σ_α ξ_α[i]·C⁻¹[α][β], hoisted per neuron i.
	s := make([]float64, p)
	for i := 0; i < h.n; i++ {
		for beta := 0; beta < p; beta++ {
			s[beta] = 0
		}
		for alpha := 0; alpha < p; alpha++ {
			xi := patterns[alpha][i]
			if xi == 0 {
				continue // unreachable for bipolar input; keeps the kernel total
			}
			invRow := inv.Row(alpha)
			for beta := 0; beta < p; beta++ {
				s[beta] += xi * invRow[beta]
			}
		}

		row := h.weights.Row(i)
		for j := 0; j < h.n; j++ {
			if i == j {
				continue
			}
			var sum float64
			for beta := 0; beta < p; beta++ {
				sum += s[beta] * patterns[beta][j]
			}
			row[j] = sum
		}
	}

	return nil
}
