package chipfiring

import (
	"io"
	"log/slog"
)

// UpdateMode selects how Step advances the dynamics.
type UpdateMode int

const (
	// Sequential fires exactly one active vertex per step.
	Sequential UpdateMode = iota
	// Parallel fires every vertex active at the start of the step, applying
	// all deltas against the pre-step configuration.
	Parallel
)

// String implements fmt.Stringer.
func (m UpdateMode) String() string {
	switch m {
	case Sequential:
		return "Sequential"
	case Parallel:
		return "Parallel"
	default:
		return "UpdateMode(unknown)"
	}
}

// SelectionStrategy picks which active vertex a Sequential step fires.
type SelectionStrategy int

const (
	// FirstActive fires the active vertex with the lowest index.
	FirstActive SelectionStrategy = iota
	// RandomActive fires a uniformly chosen active vertex (one IntN draw).
	RandomActive
)

// String implements fmt.Stringer.
func (s SelectionStrategy) String() string {
	switch s {
	case FirstActive:
		return "FirstActive"
	case RandomActive:
		return "RandomActive"
	default:
		return "SelectionStrategy(unknown)"
	}
}

// DefaultForwardSteps bounds a Forward run (the Network capability).
const DefaultForwardSteps = 100

// Option configures a Graph at construction.
type Option func(*Graph)

// WithUpdateMode sets the stepping mode. The default is Sequential.
func WithUpdateMode(m UpdateMode) Option {
	return func(g *Graph) { g.mode = m }
}

// WithSelectionStrategy sets the Sequential vertex choice. The default is
// FirstActive.
func WithSelectionStrategy(s SelectionStrategy) Option {
	return func(g *Graph) { g.strategy = s }
}

// WithLogger attaches a structured logger for run diagnostics; by default
// they are discarded.
func WithLogger(log *slog.Logger) Option {
	return func(g *Graph) {
		if log != nil {
			g.log = log
		}
	}
}

// discardLogger is the default sink: structured logging wired, nothing
// written unless the caller opts in.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
