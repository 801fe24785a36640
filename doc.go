// Package netdyn is an in-memory playground for small discrete dynamical
// systems on networks — train them, step them, and watch them settle.
//
// 🚀 What is netdyn?
//
//	A compact, dependency-light library implementing two classic models:
//		• hopfield/   — a stochastic Hopfield associative memory:
//		  Hebbian & pseudo-inverse training, synchronous and asynchronous
//		  Glauber updates, Lyapunov energy, Erdős–Rényi topology pruning
//		• chipfiring/ — a chip-firing (Abelian sandpile) graph:
//		  sequential & parallel firing dynamics, avalanche triggering,
//		  stability detection, grid/cycle/complete/star builders
//		• matrix/     — the shared dense linear-algebra kernels
//		  (row-major storage, LU factorization, inversion)
//
// ✨ Design rules, everywhere:
//
//   - Explicit randomness — every stochastic operation takes a caller-owned
//     *rand.Rand; seed it once and replay any trajectory bit-for-bit
//   - Typed sentinel errors matched via errors.Is; no panics on user input
//   - Single-threaded, synchronous engines; no hidden goroutines
//   - History logs grow until you clear them — inspectability over thrift
//
// Both engines satisfy the Network capability (Forward/TrainPatterns/Size)
// declared in this package, by structural conformance only.
//
//	go get github.com/katalvlaran/netdyn
package netdyn
