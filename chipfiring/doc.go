// Package chipfiring implements chip-firing dynamics (the Abelian sandpile
// model) on finite multigraphs.
//
// A Graph holds an immutable adjacency matrix (entry [i][j] counts directed
// edges from i to j), a chip configuration over the vertices, and an
// append-only history of configurations. A vertex is active when it holds at
// least as many chips as its degree; firing it sends one chip along every
// incident edge. Chips are conserved by every firing, so dynamics on a
// connected graph with few enough chips always stabilize.
//
// Step advances the system under one of two modes: Sequential fires a single
// active vertex (lowest index, or uniformly random), Parallel fires every
// vertex active at the start of the step simultaneously. Run iterates Step
// until stability or a step budget; TriggerAvalanche drops one chip on a
// vertex and runs the resulting cascade.
//
// Constructors cover explicit adjacency matrices, edge lists, and the common
// topologies (grid, cycle, complete, star). As in the rest of the module,
// all randomness comes from a caller-supplied *rand.Rand.
package chipfiring
