package netdyn

import "math/rand/v2"

// Network is the capability shared by every engine in this module: run the
// dynamics forward from an input, (re)train from stored data, and report the
// system size. S is the engine's native state type ([]float64 for bipolar
// Hopfield states, []int32 for chip configurations).
//
// Forward returns the full trajectory (entry 0 is the input state) rather
// than just the final state, because for these systems the path is as
// interesting as the fixed point. The RNG is caller-owned: engines draw from
// it in a documented order and never fall back to global randomness.
//
// Conformance is structural — hopfield.Network and chipfiring.Graph simply
// carry matching methods; there is no registration step.
type Network[S any] interface {
	// Forward runs the dynamics from input and returns the state trajectory.
	Forward(input S, rng *rand.Rand) ([]S, error)

	// TrainPatterns (re)builds internal state from the given data set.
	TrainPatterns(data []S) error

	// Size reports the number of units (neurons or vertices).
	Size() int
}
