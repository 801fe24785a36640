package chipfiring

import (
	"fmt"
	"log/slog"
)

// Graph is a chip-firing graph: a fixed multigraph topology plus a mutable
// chip configuration and its history.
//
// The adjacency matrix and derived degrees are immutable after construction;
// the configuration changes only through firing and the explicit setters.
// History entry 0 is the construction-time (or last Set/Reset) configuration
// and successful steps append to it. Instances are not safe for concurrent
// use; the engine is deliberately single-threaded (pair it with one
// caller-owned RNG per instance).
type Graph struct {
	n             int
	adjacency     [][]uint32
	degrees       []uint32
	configuration []int32
	history       [][]int32
	mode          UpdateMode
	strategy      SelectionStrategy
	log           *slog.Logger
}

// New creates a chip-firing graph from an adjacency matrix and an initial
// configuration. adjacency[i][j] is the number of directed edges from i to
// j; for undirected graphs keep it symmetric (the builders do). The matrix
// is deep-copied, so later mutation of the argument cannot reach the graph.
//
// Errors: ErrDimensionMismatch (non-square matrix, configuration length),
// ErrNegativeChips.
// Complexity: O(V²).
func New(adjacency [][]uint32, initial []int32, opts ...Option) (*Graph, error) {
	n := len(adjacency)
	for i, row := range adjacency {
		if len(row) != n {
			return nil, fmt.Errorf("chipfiring: adjacency row %d has length %d, want %d: %w",
				i, len(row), n, ErrDimensionMismatch)
		}
	}
	if err := validateConfiguration(initial, n); err != nil {
		return nil, err
	}

	adj := make([][]uint32, n)
	degrees := make([]uint32, n)
	for i, row := range adjacency {
		adj[i] = append([]uint32(nil), row...)
		for _, m := range row {
			degrees[i] += m
		}
	}

	conf := append([]int32(nil), initial...)
	g := &Graph{
		n:             n,
		adjacency:     adj,
		degrees:       degrees,
		configuration: conf,
		history:       [][]int32{append([]int32(nil), conf...)},
		mode:          Sequential,
		strategy:      FirstActive,
		log:           discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// validateConfiguration checks length and non-negativity of a chip vector.
func validateConfiguration(conf []int32, n int) error {
	if len(conf) != n {
		return fmt.Errorf("chipfiring: configuration length %d, want %d: %w",
			len(conf), n, ErrDimensionMismatch)
	}
	for i, c := range conf {
		if c < 0 {
			return fmt.Errorf("chipfiring: vertex %d holds %d chips: %w", i, c, ErrNegativeChips)
		}
	}

	return nil
}

// Size returns the number of vertices V. Complexity: O(1).
func (g *Graph) Size() int { return g.n }

// Mode returns the current update mode.
func (g *Graph) Mode() UpdateMode { return g.mode }

// SetMode switches the update mode; takes effect on the next Step.
func (g *Graph) SetMode(m UpdateMode) { g.mode = m }

// Strategy returns the current Sequential selection strategy.
func (g *Graph) Strategy() SelectionStrategy { return g.strategy }

// SetStrategy switches the Sequential selection strategy.
func (g *Graph) SetStrategy(s SelectionStrategy) { g.strategy = s }

// Configuration returns a copy of the current chip configuration.
// Complexity: O(V).
func (g *Graph) Configuration() []int32 {
	return append([]int32(nil), g.configuration...)
}

// History returns a copy of the configuration log: entry 0 is the initial
// configuration, each successful Step appends one entry.
// Complexity: O(len(history)·V).
func (g *Graph) History() [][]int32 {
	out := make([][]int32, len(g.history))
	for i, h := range g.history {
		out[i] = append([]int32(nil), h...)
	}

	return out
}

// Degrees returns a copy of all vertex degrees. Complexity: O(V).
func (g *Graph) Degrees() []uint32 {
	return append([]uint32(nil), g.degrees...)
}

// Degree returns the degree of vertex v. Returns ErrInvalidGraphStructure
// for out-of-range v. Complexity: O(1).
func (g *Graph) Degree(v int) (uint32, error) {
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("chipfiring: vertex %d outside range 0..%d: %w",
			v, g.n, ErrInvalidGraphStructure)
	}

	return g.degrees[v], nil
}

// Adjacency returns a deep copy of the adjacency matrix.
// Complexity: O(V²).
func (g *Graph) Adjacency() [][]uint32 {
	out := make([][]uint32, g.n)
	for i, row := range g.adjacency {
		out[i] = append([]uint32(nil), row...)
	}

	return out
}

// ActiveVertices returns the indices of all active vertices in ascending
// order. Vertex i is active iff configuration[i] >= degrees[i]; an isolated
// vertex (degree 0) is therefore always active, including at 0 chips.
// Complexity: O(V).
func (g *Graph) ActiveVertices() []int {
	var active []int
	for i := 0; i < g.n; i++ {
		if g.configuration[i] >= int32(g.degrees[i]) {
			active = append(active, i)
		}
	}

	return active
}

// IsStable reports whether no vertex is active. Complexity: O(V).
func (g *Graph) IsStable() bool {
	return len(g.ActiveVertices()) == 0
}

// TotalChips returns the chip sum over all vertices. Firing conserves it:
// each directed edge contributes one chip to the loss and one to the gain.
// Complexity: O(V).
func (g *Graph) TotalChips() int64 {
	var total int64
	for _, c := range g.configuration {
		total += int64(c)
	}

	return total
}

// Neighbors returns the distinct neighbors of v in ascending order (parallel
// edges collapse to one entry). Returns ErrInvalidGraphStructure for
// out-of-range v. Complexity: O(V).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("chipfiring: vertex %d outside range 0..%d: %w",
			v, g.n, ErrInvalidGraphStructure)
	}

	var neighbors []int
	for j, m := range g.adjacency[v] {
		if m > 0 {
			neighbors = append(neighbors, j)
		}
	}

	return neighbors, nil
}
