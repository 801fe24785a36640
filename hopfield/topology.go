package hopfield

import "math/rand/v2"

// ApplyErdosRenyiTopology prunes the trained weight matrix down to an
// Erdős–Rényi random graph: each unordered pair (i,j), i<j, keeps its
// connection with probability p, otherwise both W[i][j] and W[j][i] are
// zeroed so symmetry is preserved. Consumes one Float64 draw per pair, in
// row-major (i,j) order.
//
// A p outside [0,1] is a no-op with a warning, not an error — the weights
// are left exactly as trained. Pruning composes with any training rule and
// keeps the zero diagonal.
//
// Complexity: O(N²).
func (h *Network) ApplyErdosRenyiTopology(p float64, rng *rand.Rand) {
	if p < 0.0 || p > 1.0 {
		h.log.Warn("Erdős–Rényi connectivity must be within [0,1]; skipping pruning", "p", p)
		return
	}

	for i := 0; i < h.n; i++ {
		row := h.weights.Row(i)
		for j := i + 1; j < h.n; j++ {
			if rng.Float64() > p {
				row[j] = 0.0
				h.weights.Row(j)[i] = 0.0
			}
		}
	}
}
