package hopfield

import (
	"math"
	"math/rand/v2"
)

// glauberProb returns P(S=+1) = 1/(1+exp(-2βh)) for activation h at
// inverse temperature β.
func glauberProb(beta, h float64) float64 {
	return 1.0 / (1.0 + math.Exp(-2.0*beta*h))
}

// activation computes h_i = Σ_j W[i][j]·state[j].
func (h *Network) activation(i int, state []float64) float64 {
	row := h.weights.Row(i)
	var sum float64
	for j := 0; j < h.n; j++ {
		sum += row[j] * state[j]
	}

	return sum
}

// UpdateStep performs one synchronous stochastic update pass and returns
// the next state; the input is not mutated. Every neuron i draws its new
// value from P(S_i=+1) = 1/(1+exp(-2β·h_i)) with h_i computed against the
// snapshotted input state. Consumes exactly one Float64 draw per neuron,
// in neuron-index order — part of the reproducibility contract.
//
// Errors: ErrDimensionMismatch, ErrInvalidStateValue.
// Complexity: O(N²).
func (h *Network) UpdateStep(state []float64, beta float64, rng *rand.Rand) ([]float64, error) {
	if err := h.validateState(state); err != nil {
		return nil, err
	}

	next := make([]float64, h.n)
	for i := 0; i < h.n; i++ {
		if rng.Float64() < glauberProb(beta, h.activation(i, state)) {
			next[i] = 1.0
		} else {
			next[i] = -1.0
		}
	}

	return next, nil
}

// UpdateStepAsync updates one uniformly chosen neuron in place. The
// activation is computed from the current (not snapshotted) state, so a
// sweep of N calls sees earlier flips within the same sweep. Consumes one
// IntN draw then one Float64 draw.
//
// Errors: ErrDimensionMismatch, ErrInvalidStateValue.
// Complexity: O(N).
func (h *Network) UpdateStepAsync(state []float64, beta float64, rng *rand.Rand) error {
	if err := h.validateState(state); err != nil {
		return err
	}

	i := rng.IntN(h.n)
	if rng.Float64() < glauberProb(beta, h.activation(i, state)) {
		state[i] = 1.0
	} else {
		state[i] = -1.0
	}

	return nil
}

// historyCap sizes a run's history allocation; negative budgets still hold
// the initial state.
func historyCap(maxIterations int) int {
	if maxIterations < 0 {
		return 1
	}

	return maxIterations + 1
}

// Run iterates UpdateStep for exactly maxIterations synchronous steps and
// returns the state history (entry 0 is the initial state) together with
// the number of iterations performed. Stochastic dynamics never converge
// by state equality, so there is no early stop: the full budget is always
// spent. A non-positive maxIterations performs zero steps.
//
// The history holds maxIterations+1 vectors of length N; the caller owns
// that growth (pick the bound accordingly).
//
// Errors: ErrDimensionMismatch, ErrInvalidStateValue.
// Complexity: O(maxIterations·N²).
func (h *Network) Run(initial []float64, maxIterations int, beta float64, rng *rand.Rand) ([][]float64, int, error) {
	if err := h.validateState(initial); err != nil {
		return nil, 0, err
	}

	current := append([]float64(nil), initial...)
	history := make([][]float64, 0, historyCap(maxIterations))
	history = append(history, append([]float64(nil), current...))

	performed := 0
	for it := 0; it < maxIterations; it++ {
		next, err := h.UpdateStep(current, beta, rng)
		if err != nil {
			return nil, performed, err // unreachable: UpdateStep outputs stay bipolar
		}
		history = append(history, next)
		current = next
		performed++
	}

	return history, performed, nil
}

// RunAsync is Run's asynchronous counterpart: each iteration is one full
// sweep of N single-neuron updates, and the history records the state
// after each sweep (entry 0 is the initial state). Like Run, it always
// spends the full iteration budget.
//
// Errors: ErrDimensionMismatch, ErrInvalidStateValue.
// Complexity: O(maxIterations·N²).
func (h *Network) RunAsync(initial []float64, maxIterations int, beta float64, rng *rand.Rand) ([][]float64, int, error) {
	if err := h.validateState(initial); err != nil {
		return nil, 0, err
	}

	current := append([]float64(nil), initial...)
	history := make([][]float64, 0, historyCap(maxIterations))
	history = append(history, append([]float64(nil), current...))

	performed := 0
	for it := 0; it < maxIterations; it++ {
		for k := 0; k < h.n; k++ {
			if err := h.UpdateStepAsync(current, beta, rng); err != nil {
				return nil, performed, err // unreachable: in-place updates stay bipolar
			}
		}
		history = append(history, append([]float64(nil), current...))
		performed++
	}

	return history, performed, nil
}
