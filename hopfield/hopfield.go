package hopfield

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netdyn/matrix"
)

// Network is a discrete-time stochastic Hopfield network.
//
// The neuron count is fixed at construction; the weight matrix is rewritten
// wholesale by Train and selectively zeroed by ApplyErdosRenyiTopology, and
// its diagonal is zero at all times. Instances are not safe for concurrent
// use; the engine is deliberately single-threaded (pair it with one
// caller-owned RNG per instance).
type Network struct {
	n       int
	weights *matrix.Dense
	log     *slog.Logger
}

// New creates a Hopfield network with numNeurons neurons and all-zero
// weights. numNeurons must be positive: a non-positive count is a
// programming error, so New panics rather than returning an error.
func New(numNeurons int, opts ...Option) *Network {
	if numNeurons <= 0 {
		panic(fmt.Sprintf("hopfield: number of neurons must be > 0, got %d", numNeurons))
	}
	w, err := matrix.NewDense(numNeurons, numNeurons)
	if err != nil {
		panic(fmt.Sprintf("hopfield: weight allocation: %v", err)) // unreachable for n > 0
	}

	h := &Network{n: numNeurons, weights: w, log: discardLogger()}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Size returns the number of neurons N. Complexity: O(1).
func (h *Network) Size() int { return h.n }

// Weight returns W[i][j]. Returns ErrDimensionMismatch for out-of-range
// indices. Complexity: O(1).
func (h *Network) Weight(i, j int) (float64, error) {
	v, err := h.weights.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("hopfield: weight (%d,%d): %w", i, j, ErrDimensionMismatch)
	}

	return v, nil
}

// Weights returns a deep copy of the weight matrix. The engine's state is
// value-owned; callers never observe or alias live internals.
// Complexity: O(N²).
func (h *Network) Weights() *matrix.Dense {
	return h.weights.Clone()
}

// validateState checks that state has exactly n components, all ±1.0.
// Called at the start of every public operation consuming a state vector.
func (h *Network) validateState(state []float64) error {
	if len(state) != h.n {
		return fmt.Errorf("hopfield: state length %d, want %d: %w", len(state), h.n, ErrDimensionMismatch)
	}
	for i, v := range state {
		if v != 1.0 && v != -1.0 {
			return fmt.Errorf("hopfield: state[%d] = %v: %w", i, v, ErrInvalidStateValue)
		}
	}

	return nil
}

// Energy computes the Lyapunov energy E = -0.5·Σ_{i≠j} W[i][j]·S[i]·S[j]
// of a bipolar state. The diagonal is zero by invariant but the i≠j guard
// stays explicit so pruned or hand-edited matrices cannot leak self-energy.
//
// Errors: ErrDimensionMismatch, ErrInvalidStateValue.
// Complexity: O(N²).
func (h *Network) Energy(state []float64) (float64, error) {
	if err := h.validateState(state); err != nil {
		return 0, err
	}

	var e float64
	for i := 0; i < h.n; i++ {
		row := h.weights.Row(i)
		si := state[i]
		for j := 0; j < h.n; j++ {
			if i == j {
				continue
			}
			e += row[j] * si * state[j]
		}
	}

	return -0.5 * e, nil
}
