package chipfiring_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/netdyn/chipfiring"
)

func BenchmarkStepSequential_Cycle256(b *testing.B) {
	// Two chips everywhere keep the cycle supercritical forever, so every
	// step fires.
	initial := make([]int32, 256)
	for i := range initial {
		initial[i] = 2
	}
	g, err := chipfiring.NewCycle(256, initial)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(1, 0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.Step(rng); err != nil {
			b.Fatal(err)
		}
		if i%1024 == 0 {
			g.ClearHistory()
		}
	}
}

func BenchmarkTriggerAvalanche_Grid16(b *testing.B) {
	g, err := chipfiring.NewGrid(16, 16, make([]int32, 256))
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(2, 0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.TriggerAvalanche(rng.IntN(256), 10_000, rng); err != nil {
			b.Fatal(err)
		}
		g.ClearHistory()
		if i%500 == 499 {
			// Chips only ever enter, so drain periodically to keep the
			// cascades bounded.
			if err := g.SetConfiguration(make([]int32, 256)); err != nil {
				b.Fatal(err)
			}
		}
	}
}
