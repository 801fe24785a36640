package hopfield_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/netdyn/hopfield"
)

// benchPatterns builds p deterministic bipolar patterns of length n.
func benchPatterns(n, p int) [][]float64 {
	rng := rand.New(rand.NewPCG(1, 0))
	patterns := make([][]float64, p)
	for k := range patterns {
		v := make([]float64, n)
		for i := range v {
			if rng.IntN(2) == 0 {
				v[i] = 1
			} else {
				v[i] = -1
			}
		}
		patterns[k] = v
	}

	return patterns
}

func BenchmarkTrainHebbian_256(b *testing.B) {
	patterns := benchPatterns(256, 8)
	h := hopfield.New(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := h.Train(patterns, hopfield.Hebbian); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUpdateStep_256(b *testing.B) {
	patterns := benchPatterns(256, 8)
	h := hopfield.New(256)
	if err := h.Train(patterns, hopfield.Hebbian); err != nil {
		b.Fatal(err)
	}
	state := patterns[0]
	rng := rand.New(rand.NewPCG(2, 0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next, err := h.UpdateStep(state, 2.0, rng)
		if err != nil {
			b.Fatal(err)
		}
		state = next
	}
}
