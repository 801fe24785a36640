package chipfiring

import "errors"

// Sentinel errors for chipfiring operations. Operations wrap these with
// context via fmt.Errorf("...: %w", err); match with errors.Is.
var (
	// ErrDimensionMismatch indicates an adjacency matrix that is not square
	// or a configuration whose length differs from the vertex count.
	ErrDimensionMismatch = errors.New("chipfiring: dimension mismatch")

	// ErrInvalidGraphStructure indicates a vertex index outside the graph or
	// a builder argument below the topology's minimum size.
	ErrInvalidGraphStructure = errors.New("chipfiring: invalid graph structure")

	// ErrNegativeChips indicates a configuration entry below zero.
	ErrNegativeChips = errors.New("chipfiring: negative chips")

	// ErrNoActiveVertices indicates a firing request on a stable graph or on
	// a vertex holding fewer chips than its degree.
	ErrNoActiveVertices = errors.New("chipfiring: no active vertices")
)
