package hopfield

import "math/rand/v2"

// Forward runs the synchronous dynamics from input for
// DefaultForwardIterations steps at DefaultForwardBeta (near-deterministic
// sign updates) and returns the state trajectory. Together with
// TrainPatterns and Size this satisfies the netdyn.Network capability.
// The RNG stays caller-supplied even here — there is no implicit fallback.
func (h *Network) Forward(input []float64, rng *rand.Rand) ([][]float64, error) {
	history, _, err := h.Run(input, DefaultForwardIterations, DefaultForwardBeta, rng)

	return history, err
}

// TrainPatterns trains with the PseudoInverse rule, the capability-level
// default. Use Train directly to pick the rule.
func (h *Network) TrainPatterns(data [][]float64) error {
	return h.Train(data, PseudoInverse)
}
