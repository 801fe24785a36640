package chipfiring

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// FireVertex fires vertex v: v loses deg(v) chips and every neighbor gains
// one chip per connecting edge (a self-loop returns its chips to v). The
// vertex must be active. FireVertex does not touch the history; only Step,
// TriggerAvalanche, SetConfiguration and Reset write it.
//
// Errors: ErrInvalidGraphStructure, ErrNoActiveVertices.
// Complexity: O(V).
func (g *Graph) FireVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("chipfiring: vertex %d outside range 0..%d: %w",
			v, g.n, ErrInvalidGraphStructure)
	}
	if g.configuration[v] < int32(g.degrees[v]) {
		return fmt.Errorf("chipfiring: vertex %d holds %d chips but needs %d to fire: %w",
			v, g.configuration[v], g.degrees[v], ErrNoActiveVertices)
	}

	g.configuration[v] -= int32(g.degrees[v])
	for j, m := range g.adjacency[v] {
		g.configuration[j] += int32(m)
	}

	return nil
}

// Step advances the dynamics by one step under the current mode and appends
// the resulting configuration to the history.
//
// Sequential fires one active vertex: FirstActive takes the lowest index,
// RandomActive draws one IntN over the active set. Parallel accumulates the
// deltas of every vertex active at the start of the step and applies them
// at once; with parallel firings a vertex can momentarily be driven
// negative on pathological topologies, which the model accepts (the
// builders' simple graphs never do).
//
// Errors: ErrNoActiveVertices when the graph is stable.
// Complexity: O(V) Sequential, O(A·V) Parallel for A active vertices.
func (g *Graph) Step(rng *rand.Rand) error {
	active := g.ActiveVertices()
	if len(active) == 0 {
		return fmt.Errorf("chipfiring: graph is stable: %w", ErrNoActiveVertices)
	}

	switch g.mode {
	case Parallel:
		delta := make([]int32, g.n)
		for _, v := range active {
			delta[v] -= int32(g.degrees[v])
			for j, m := range g.adjacency[v] {
				delta[j] += int32(m)
			}
		}
		for i := range g.configuration {
			g.configuration[i] += delta[i]
		}
	default: // Sequential
		v := active[0]
		if g.strategy == RandomActive {
			v = active[rng.IntN(len(active))]
		}
		if err := g.FireVertex(v); err != nil {
			return err // unreachable: v comes from the active set
		}
	}

	g.history = append(g.history, append([]int32(nil), g.configuration...))

	return nil
}

// Run iterates Step until the graph is stable or maxSteps steps have been
// taken, and returns the number of steps actually taken (0 when already
// stable or for a non-positive budget). Stabilization is never an error.
//
// Complexity: O(maxSteps·V) Sequential.
func (g *Graph) Run(maxSteps int, rng *rand.Rand) (int, error) {
	if maxSteps < 0 {
		maxSteps = 0
	}
	for i := 0; i < maxSteps; i++ {
		if g.IsStable() {
			g.log.Debug("stabilized", "steps", i, "chips", g.TotalChips())
			return i, nil
		}
		if err := g.Step(rng); err != nil {
			if errors.Is(err, ErrNoActiveVertices) {
				return i, nil
			}

			return i, err
		}
	}
	g.log.Debug("step budget exhausted", "steps", maxSteps, "chips", g.TotalChips())

	return maxSteps, nil
}

// TriggerAvalanche drops one chip on vertex and runs the resulting cascade
// for up to maxSteps. The post-drop configuration is snapshotted into the
// history before the run. The returned count is the number of Steps the
// cascade took — in Parallel mode that is sweeps, not individual firings.
//
// Errors: ErrInvalidGraphStructure.
func (g *Graph) TriggerAvalanche(vertex, maxSteps int, rng *rand.Rand) (int, error) {
	if vertex < 0 || vertex >= g.n {
		return 0, fmt.Errorf("chipfiring: vertex %d outside range 0..%d: %w",
			vertex, g.n, ErrInvalidGraphStructure)
	}

	g.configuration[vertex]++
	g.history = append(g.history, append([]int32(nil), g.configuration...))

	return g.Run(maxSteps, rng)
}

// Reset restores the configuration recorded as history entry 0 and
// truncates the history to that single entry.
func (g *Graph) Reset() {
	if len(g.history) == 0 {
		return
	}
	g.configuration = append([]int32(nil), g.history[0]...)
	g.history = [][]int32{append([]int32(nil), g.configuration...)}
}

// SetConfiguration replaces the chip configuration and restarts the history
// at the new value, discarding the old log.
//
// Errors: ErrDimensionMismatch, ErrNegativeChips.
func (g *Graph) SetConfiguration(conf []int32) error {
	if err := validateConfiguration(conf, g.n); err != nil {
		return err
	}
	g.configuration = append([]int32(nil), conf...)
	g.history = [][]int32{append([]int32(nil), conf...)}

	return nil
}

// ClearHistory truncates the history to the current configuration, keeping
// long-running simulations from growing without bound.
func (g *Graph) ClearHistory() {
	g.history = [][]int32{append([]int32(nil), g.configuration...)}
}
