package hopfield_test

import (
	"testing"

	"github.com/katalvlaran/netdyn"
	"github.com/katalvlaran/netdyn/hopfield"
	"github.com/stretchr/testify/require"
)

// Compile-time capability conformance.
var _ netdyn.Network[[]float64] = (*hopfield.Network)(nil)

func TestForward_TrajectoryShape(t *testing.T) {
	h := hopfield.New(4)
	require.NoError(t, h.TrainPatterns([][]float64{{1, -1, 1, -1}}))

	input := []float64{1, -1, 1, -1}
	traj, err := h.Forward(input, newRNG(11))
	require.NoError(t, err)
	require.Len(t, traj, hopfield.DefaultForwardIterations+1)
	require.Equal(t, input, traj[0])
	require.Equal(t, input, traj[len(traj)-1], "stored pattern survives a high-beta run")
}

func TestTrainPatterns_DefaultsToPseudoInverse(t *testing.T) {
	h := hopfield.New(4)
	p := []float64{1, -1, 1, -1}

	// Duplicate patterns make the overlap matrix singular, which only the
	// pseudo-inverse rule can notice — so the error proves the default rule.
	err := h.TrainPatterns([][]float64{p, p})
	require.ErrorIs(t, err, hopfield.ErrDimensionMismatch)
}
