package chipfiring

import "fmt"

// Edge is an undirected edge between two vertex indices. Listing the same
// pair twice creates a parallel edge.
type Edge struct {
	From, To int
}

// FromEdgeList creates an undirected graph on numVertices vertices: each
// edge increments both directed adjacency entries.
//
// Errors: ErrInvalidGraphStructure (endpoint outside 0..numVertices), plus
// everything New reports.
// Complexity: O(V² + E).
func FromEdgeList(edges []Edge, numVertices int, initial []int32, opts ...Option) (*Graph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("chipfiring: vertex count %d: %w", numVertices, ErrInvalidGraphStructure)
	}

	adjacency := emptyAdjacency(numVertices)
	for _, e := range edges {
		if e.From < 0 || e.From >= numVertices || e.To < 0 || e.To >= numVertices {
			return nil, fmt.Errorf("chipfiring: edge (%d,%d) references vertex outside range 0..%d: %w",
				e.From, e.To, numVertices, ErrInvalidGraphStructure)
		}
		adjacency[e.From][e.To]++
		adjacency[e.To][e.From]++
	}

	return New(adjacency, initial, opts...)
}

// NewGrid creates a width×height lattice with 4-connectivity. Vertex (x,y)
// has index y·width + x.
//
// Errors: ErrInvalidGraphStructure (non-positive dimension), plus everything
// New reports.
func NewGrid(width, height int, initial []int32, opts ...Option) (*Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("chipfiring: grid dimensions %dx%d must be positive: %w",
			width, height, ErrInvalidGraphStructure)
	}

	adjacency := emptyAdjacency(width * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if y > 0 {
				up := (y-1)*width + x
				adjacency[idx][up] = 1
				adjacency[up][idx] = 1
			}
			if x > 0 {
				left := y*width + (x - 1)
				adjacency[idx][left] = 1
				adjacency[left][idx] = 1
			}
		}
	}

	return New(adjacency, initial, opts...)
}

// NewCycle creates a cycle graph C_n, n >= 3. Every vertex has degree 2.
func NewCycle(n int, initial []int32, opts ...Option) (*Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("chipfiring: cycle needs at least 3 vertices, got %d: %w",
			n, ErrInvalidGraphStructure)
	}

	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Edge{From: i, To: (i + 1) % n})
	}

	return FromEdgeList(edges, n, initial, opts...)
}

// NewComplete creates a complete graph K_n, n >= 2. Every vertex has degree
// n-1.
func NewComplete(n int, initial []int32, opts ...Option) (*Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("chipfiring: complete graph needs at least 2 vertices, got %d: %w",
			n, ErrInvalidGraphStructure)
	}

	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{From: i, To: j})
		}
	}

	return FromEdgeList(edges, n, initial, opts...)
}

// NewStar creates a star graph S_n, n >= 3, with vertex 0 as the hub.
func NewStar(n int, initial []int32, opts ...Option) (*Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("chipfiring: star needs at least 3 vertices, got %d: %w",
			n, ErrInvalidGraphStructure)
	}

	edges := make([]Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, Edge{From: 0, To: i})
	}

	return FromEdgeList(edges, n, initial, opts...)
}

func emptyAdjacency(n int) [][]uint32 {
	adjacency := make([][]uint32, n)
	for i := range adjacency {
		adjacency[i] = make([]uint32, n)
	}

	return adjacency
}
