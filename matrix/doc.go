// Package matrix provides the dense linear-algebra kernels shared by the
// netdyn engines: a row-major float64 matrix with bounds-checked access,
// matrix-vector products, Doolittle LU factorization, and inversion.
//
// What & Why:
//
//	The engines need exactly one non-trivial numeric primitive — inverting
//	the pattern-overlap matrix during pseudo-inverse Hopfield training —
//	plus cheap, deterministic products. Dense stores elements in a single
//	flat slice with explicit stride, so nested-slice double indirection
//	never shows up in the step loops.
//
// Determinism:
//
//	All kernels use fixed traversal orders and no pivoting; identical
//	inputs produce bit-identical outputs. The price is that LU/Inverse
//	report ErrSingular on a zero pivot instead of reordering rows.
//
// Complexity:
//
//	At/Set are O(1); MatVec is O(r*c); LU and Inverse are O(n³).
package matrix
