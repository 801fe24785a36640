package chipfiring

import "math/rand/v2"

// Forward runs the dynamics from input on a throwaway copy of the graph for
// up to DefaultForwardSteps and returns the copy's history (entry 0 is the
// input). The receiver is never modified. Together with TrainPatterns and
// Size this satisfies the netdyn.Network capability.
//
// Errors: ErrDimensionMismatch, ErrNegativeChips.
func (g *Graph) Forward(input []int32, rng *rand.Rand) ([][]int32, error) {
	copyG, err := New(g.adjacency, input,
		WithUpdateMode(g.mode), WithSelectionStrategy(g.strategy))
	if err != nil {
		return nil, err
	}
	if _, err := copyG.Run(DefaultForwardSteps, rng); err != nil {
		return nil, err
	}

	return copyG.History(), nil
}

// TrainPatterns adopts the first pattern as the configuration (the topology
// itself is fixed at construction). An empty set is a no-op.
func (g *Graph) TrainPatterns(data [][]int32) error {
	if len(data) == 0 {
		return nil
	}

	return g.SetConfiguration(data[0])
}
