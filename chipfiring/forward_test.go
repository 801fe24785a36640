package chipfiring_test

import (
	"testing"

	"github.com/katalvlaran/netdyn"
	"github.com/katalvlaran/netdyn/chipfiring"
	"github.com/stretchr/testify/require"
)

// Compile-time capability conformance.
var _ netdyn.Network[[]int32] = (*chipfiring.Graph)(nil)

func TestForward(t *testing.T) {
	g, err := chipfiring.NewGrid(2, 2, []int32{0, 0, 0, 0})
	require.NoError(t, err)

	input := []int32{3, 0, 0, 0}
	history, err := g.Forward(input, newRNG(1))
	require.NoError(t, err)

	require.Equal(t, input, history[0])
	require.Equal(t, []int32{1, 1, 1, 0}, history[len(history)-1])
	require.Equal(t, []int32{0, 0, 0, 0}, g.Configuration(), "receiver untouched")
	require.Len(t, g.History(), 1)
}

func TestForward_Validation(t *testing.T) {
	g, err := chipfiring.NewGrid(2, 2, []int32{0, 0, 0, 0})
	require.NoError(t, err)

	_, err = g.Forward([]int32{1, 2}, newRNG(1))
	require.ErrorIs(t, err, chipfiring.ErrDimensionMismatch)

	_, err = g.Forward([]int32{-1, 0, 0, 0}, newRNG(1))
	require.ErrorIs(t, err, chipfiring.ErrNegativeChips)
}

func TestTrainPatterns(t *testing.T) {
	g, err := chipfiring.NewGrid(2, 2, []int32{0, 0, 0, 0})
	require.NoError(t, err)

	require.NoError(t, g.TrainPatterns([][]int32{{1, 2, 3, 4}, {9, 9, 9, 9}}))
	require.Equal(t, []int32{1, 2, 3, 4}, g.Configuration(), "first pattern wins")

	require.NoError(t, g.TrainPatterns(nil))
	require.Equal(t, []int32{1, 2, 3, 4}, g.Configuration(), "empty set is a no-op")
}
