// Package hopfield implements a discrete-time stochastic Hopfield
// associative memory.
//
// The network owns an N×N weight matrix with a permanently zero diagonal.
// Train rebuilds the weights wholesale from a set of bipolar patterns
// (every component exactly +1 or −1) using either the Hebbian outer-product
// rule or the pseudo-inverse rule; the latter inverts the pattern-overlap
// matrix to cancel interference between correlated patterns and fails on a
// singular overlap (e.g. duplicate patterns).
//
// Dynamics are Glauber updates at inverse temperature β: a neuron takes
// value +1 with probability 1/(1+exp(−2βh)) where h is its weighted input.
// UpdateStep applies one synchronous pass over all neurons; UpdateStepAsync
// updates a single uniformly chosen neuron in place. Run and RunAsync
// iterate for exactly the requested number of iterations — stochastic
// trajectories never "converge" by state equality, so there is no early
// stop; bound the run yourself and inspect the returned history.
//
// All randomness comes from a caller-supplied *rand.Rand with a documented
// draw order (one Float64 per neuron in index order for synchronous steps),
// so seeded runs replay exactly.
//
// Beyond the core dynamics the package carries the small diagnostics the
// model invites: Lyapunov energy, Erdős–Rényi topology pruning, pattern
// overlap matrices and histograms, noise corruption of probe states, and
// ASCII rendering of square states.
package hopfield
