package hopfield

import (
	"io"
	"log/slog"
)

// TrainingRule selects how Train computes the weight matrix.
type TrainingRule int

const (
	// Hebbian sums pattern co-occurrence: W[i][j] = Σ_p ξ_p[i]·ξ_p[j], i≠j.
	Hebbian TrainingRule = iota
	// PseudoInverse orthogonalizes stored-pattern interference through the
	// inverse of the pattern-overlap matrix.
	PseudoInverse
)

// String implements fmt.Stringer.
func (r TrainingRule) String() string {
	switch r {
	case Hebbian:
		return "Hebbian"
	case PseudoInverse:
		return "PseudoInverse"
	default:
		return "TrainingRule(unknown)"
	}
}

// Forward defaults used by the Network capability (Forward/TrainPatterns):
// a high β makes the dynamics near-deterministic sign updates.
const (
	// DefaultForwardIterations bounds a Forward run.
	DefaultForwardIterations = 100
	// DefaultForwardBeta is the inverse temperature Forward runs at.
	DefaultForwardBeta = 100.0
)

// Option configures a Network at construction.
type Option func(*Network)

// WithLogger attaches a structured logger. The network logs only the two
// documented warning paths (empty training set, out-of-range Erdős–Rényi
// probability); by default those warnings are discarded.
func WithLogger(log *slog.Logger) Option {
	return func(h *Network) {
		if log != nil {
			h.log = log
		}
	}
}

// discardLogger is the default sink: structured logging wired, nothing
// written unless the caller opts in.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
