package chipfiring_test

import (
	"testing"

	"github.com/katalvlaran/netdyn/chipfiring"
	"github.com/stretchr/testify/require"
)

func TestFireVertex_PathScenario(t *testing.T) {
	g := pathGraph(t, []int32{2, 0, 0})
	require.Equal(t, []uint32{1, 2, 1}, g.Degrees())

	require.NoError(t, g.FireVertex(0))
	require.Equal(t, []int32{1, 1, 0}, g.Configuration())
	require.Equal(t, []int{0}, g.ActiveVertices(), "1 chip still meets degree 1")

	require.NoError(t, g.FireVertex(0))
	require.Equal(t, []int32{0, 2, 0}, g.Configuration())
	require.Equal(t, []int{1}, g.ActiveVertices())

	require.NoError(t, g.FireVertex(1))
	require.Equal(t, []int32{1, 0, 1}, g.Configuration())

	// Two chips on a path can never settle: stability would need a total
	// of at most one. The endpoints stay active and trade chips forever.
	require.Equal(t, []int{0, 2}, g.ActiveVertices())
	require.Equal(t, int64(2), g.TotalChips(), "firing conserves chips")
}

func TestFireVertex_Errors(t *testing.T) {
	g := pathGraph(t, []int32{2, 0, 0})

	require.ErrorIs(t, g.FireVertex(3), chipfiring.ErrInvalidGraphStructure)
	require.ErrorIs(t, g.FireVertex(-1), chipfiring.ErrInvalidGraphStructure)
	require.ErrorIs(t, g.FireVertex(1), chipfiring.ErrNoActiveVertices, "0 chips < degree 2")
}

func TestFireVertex_DoesNotLogHistory(t *testing.T) {
	g := pathGraph(t, []int32{2, 0, 0})
	require.NoError(t, g.FireVertex(0))
	require.Len(t, g.History(), 1, "only Step and friends write history")
}

func TestStep_SequentialFirstActive(t *testing.T) {
	g := pathGraph(t, []int32{2, 0, 0})

	require.NoError(t, g.Step(newRNG(1)))
	require.Equal(t, []int32{1, 1, 0}, g.Configuration())

	history := g.History()
	require.Len(t, history, 2)
	require.Equal(t, []int32{2, 0, 0}, history[0])
	require.Equal(t, []int32{1, 1, 0}, history[1])
}

func TestStep_Stable(t *testing.T) {
	g := pathGraph(t, []int32{0, 0, 0})
	require.ErrorIs(t, g.Step(newRNG(1)), chipfiring.ErrNoActiveVertices)
	require.Len(t, g.History(), 1, "failed step leaves no trace")
}

func TestStep_RandomActiveDeterministic(t *testing.T) {
	run := func(seed uint64) [][]int32 {
		g, err := chipfiring.NewComplete(3, []int32{2, 2, 2},
			chipfiring.WithSelectionStrategy(chipfiring.RandomActive))
		require.NoError(t, err)
		rng := newRNG(seed)
		for i := 0; i < 5; i++ {
			require.NoError(t, g.Step(rng))
		}

		return g.History()
	}

	require.Equal(t, run(7), run(7), "same seed, same trajectory")
}

func TestStep_Parallel(t *testing.T) {
	g, err := chipfiring.NewCycle(4, []int32{2, 2, 0, 0},
		chipfiring.WithUpdateMode(chipfiring.Parallel))
	require.NoError(t, err)

	// Vertices 0 and 1 fire together: each loses 2, each neighbor gains 1.
	require.NoError(t, g.Step(newRNG(1)))
	require.Equal(t, []int32{1, 1, 1, 1}, g.Configuration())
	require.Equal(t, int64(4), g.TotalChips())
	require.True(t, g.IsStable())
}

func TestStep_ParallelProperties(t *testing.T) {
	// Builder graphs are loop-free, so a firing vertex keeps a non-negative
	// balance even when all its neighbors fire too.
	g, err := chipfiring.NewCycle(6, []int32{3, 0, 2, 2, 0, 1},
		chipfiring.WithUpdateMode(chipfiring.Parallel))
	require.NoError(t, err)

	total := g.TotalChips()
	rng := newRNG(42)
	for i := 0; i < 50 && !g.IsStable(); i++ {
		require.NoError(t, g.Step(rng))
		require.Equal(t, total, g.TotalChips(), "parallel step conserves chips")
		for v, c := range g.Configuration() {
			require.GreaterOrEqual(t, c, int32(0), "vertex %d went negative", v)
		}
	}
}

func TestRun_AlreadyStable(t *testing.T) {
	g, err := chipfiring.NewGrid(2, 2, []int32{0, 0, 0, 0})
	require.NoError(t, err)

	steps, err := g.Run(100, newRNG(1))
	require.NoError(t, err)
	require.Zero(t, steps)
	require.Len(t, g.History(), 1)
}

func TestRun_Stabilizes(t *testing.T) {
	g, err := chipfiring.NewGrid(2, 2, []int32{3, 0, 0, 0})
	require.NoError(t, err)

	steps, err := g.Run(100, newRNG(1))
	require.NoError(t, err)
	require.Equal(t, 1, steps)
	require.Equal(t, []int32{1, 1, 1, 0}, g.Configuration())
	require.True(t, g.IsStable())
}

func TestRun_NonPositiveBudget(t *testing.T) {
	g := pathGraph(t, []int32{2, 0, 0})

	for _, budget := range []int{0, -1, -5} {
		steps, err := g.Run(budget, newRNG(1))
		require.NoError(t, err, "budget %d", budget)
		require.Zero(t, steps, "step count never goes negative")
	}
	require.Equal(t, []int32{2, 0, 0}, g.Configuration(), "no firing happened")
	require.Len(t, g.History(), 1)
}

func TestRun_ExhaustsBudget(t *testing.T) {
	g := pathGraph(t, []int32{2, 0, 0})

	steps, err := g.Run(10, newRNG(1))
	require.NoError(t, err)
	require.Equal(t, 10, steps, "two chips on a path never settle")
	require.Equal(t, int64(2), g.TotalChips())
	require.Len(t, g.History(), 11)
}

func TestTriggerAvalanche(t *testing.T) {
	g, err := chipfiring.NewGrid(2, 2, []int32{0, 0, 0, 0})
	require.NoError(t, err)

	steps, err := g.TriggerAvalanche(0, 100, newRNG(1))
	require.NoError(t, err)
	require.Zero(t, steps, "one chip on degree 2 is inert")
	require.Equal(t, []int32{1, 0, 0, 0}, g.Configuration())

	steps, err = g.TriggerAvalanche(0, 100, newRNG(1))
	require.NoError(t, err)
	require.Equal(t, 1, steps)
	require.Equal(t, []int32{0, 1, 1, 0}, g.Configuration())
	require.Equal(t, int64(2), g.TotalChips(), "each avalanche adds exactly one chip")

	// init, drop, drop, fired.
	require.Len(t, g.History(), 4)
	require.Equal(t, []int32{2, 0, 0, 0}, g.History()[2], "post-drop snapshot precedes the run")
}

func TestTriggerAvalanche_RangeCheck(t *testing.T) {
	g, err := chipfiring.NewGrid(2, 2, []int32{0, 0, 0, 0})
	require.NoError(t, err)

	_, err = g.TriggerAvalanche(4, 100, newRNG(1))
	require.ErrorIs(t, err, chipfiring.ErrInvalidGraphStructure)
	require.Equal(t, int64(0), g.TotalChips(), "no chip added on a rejected vertex")
}

func TestReset(t *testing.T) {
	g := pathGraph(t, []int32{2, 0, 0})
	_, err := g.Run(5, newRNG(1))
	require.NoError(t, err)
	require.NotEqual(t, []int32{2, 0, 0}, g.Configuration())

	g.Reset()
	require.Equal(t, []int32{2, 0, 0}, g.Configuration())
	require.Len(t, g.History(), 1)
}

func TestSetConfiguration(t *testing.T) {
	g := pathGraph(t, []int32{2, 0, 0})
	_, err := g.Run(3, newRNG(1))
	require.NoError(t, err)

	require.NoError(t, g.SetConfiguration([]int32{0, 1, 0}))
	require.Equal(t, []int32{0, 1, 0}, g.Configuration())
	require.Len(t, g.History(), 1, "history restarts at the new configuration")
	require.Equal(t, []int32{0, 1, 0}, g.History()[0])

	require.ErrorIs(t, g.SetConfiguration([]int32{0, 1}), chipfiring.ErrDimensionMismatch)
	require.ErrorIs(t, g.SetConfiguration([]int32{0, -1, 0}), chipfiring.ErrNegativeChips)
	require.Equal(t, []int32{0, 1, 0}, g.Configuration(), "rejected sets change nothing")
}

func TestClearHistory(t *testing.T) {
	g := pathGraph(t, []int32{2, 0, 0})
	_, err := g.Run(4, newRNG(1))
	require.NoError(t, err)
	require.Greater(t, len(g.History()), 1)

	before := g.Configuration()
	g.ClearHistory()
	require.Len(t, g.History(), 1)
	require.Equal(t, before, g.History()[0])
	require.Equal(t, before, g.Configuration())
}

func TestSetMode_TakesEffect(t *testing.T) {
	g := pathGraph(t, []int32{2, 0, 2})
	g.SetMode(chipfiring.Parallel)
	require.Equal(t, chipfiring.Parallel, g.Mode())

	// Both endpoints are active and fire in one sweep.
	require.NoError(t, g.Step(newRNG(1)))
	require.Equal(t, []int32{1, 2, 1}, g.Configuration())
}
