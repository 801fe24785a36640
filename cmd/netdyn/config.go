package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netdyn/chipfiring"
	"github.com/katalvlaran/netdyn/hopfield"
)

// HopfieldScenario is the YAML schema for 'netdyn hopfield'.
type HopfieldScenario struct {
	// Patterns to store; all the same length, components ±1.
	Patterns [][]float64 `yaml:"patterns"`
	// Rule is "hebbian" or "pseudo-inverse" (default).
	Rule string `yaml:"rule"`
	// Probe is the starting state; defaults to the first pattern.
	Probe []float64 `yaml:"probe"`
	// Noise in [0,1] flips each probe component independently.
	Noise float64 `yaml:"noise"`
	// Beta is the inverse temperature (default 100, near-deterministic).
	Beta float64 `yaml:"beta"`
	// Iterations bounds the run (default 50).
	Iterations int `yaml:"iterations"`
	// Async switches to single-neuron updates.
	Async bool `yaml:"async"`
	// Connectivity in [0,1] prunes the weights to an Erdős–Rényi topology
	// after training; negative (the default) skips pruning.
	Connectivity float64 `yaml:"connectivity"`
}

// SandpileScenario is the YAML schema for 'netdyn sandpile'.
type SandpileScenario struct {
	// Kind is one of grid, cycle, complete, star, edges.
	Kind string `yaml:"kind"`
	// Width and Height size a grid graph.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Size is the vertex count for cycle, complete and star graphs, and
	// for the edges kind.
	Size int `yaml:"size"`
	// Edges lists [from, to] pairs for the edges kind.
	Edges [][2]int `yaml:"edges"`
	// Initial chips per vertex; defaults to all zeros.
	Initial []int32 `yaml:"initial"`
	// Mode is "sequential" (default) or "parallel".
	Mode string `yaml:"mode"`
	// Strategy is "first" (default) or "random".
	Strategy string `yaml:"strategy"`
	// Drops is the sequence of vertices receiving one chip each; every
	// drop runs until stable before the next.
	Drops []int `yaml:"drops"`
	// MaxSteps bounds each avalanche (default 10000).
	MaxSteps int `yaml:"max_steps"`
}

func loadHopfieldScenario(path string) (*HopfieldScenario, error) {
	sc := &HopfieldScenario{
		Rule:         "pseudo-inverse",
		Beta:         hopfield.DefaultForwardBeta,
		Iterations:   50,
		Connectivity: -1,
	}
	if err := loadYAML(path, sc); err != nil {
		return nil, err
	}
	if len(sc.Patterns) == 0 {
		return nil, fmt.Errorf("scenario %s: at least one pattern is required", path)
	}

	return sc, nil
}

func loadSandpileScenario(path string) (*SandpileScenario, error) {
	sc := &SandpileScenario{
		Kind:     "grid",
		Mode:     "sequential",
		Strategy: "first",
		MaxSteps: 10_000,
	}
	if err := loadYAML(path, sc); err != nil {
		return nil, err
	}

	return sc, nil
}

func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}

	return nil
}

func (sc *HopfieldScenario) trainingRule() (hopfield.TrainingRule, error) {
	switch sc.Rule {
	case "hebbian":
		return hopfield.Hebbian, nil
	case "pseudo-inverse", "pseudoinverse":
		return hopfield.PseudoInverse, nil
	default:
		return 0, fmt.Errorf("unknown training rule %q (want hebbian or pseudo-inverse)", sc.Rule)
	}
}

func (sc *SandpileScenario) options() ([]chipfiring.Option, error) {
	var opts []chipfiring.Option

	switch sc.Mode {
	case "sequential", "":
	case "parallel":
		opts = append(opts, chipfiring.WithUpdateMode(chipfiring.Parallel))
	default:
		return nil, fmt.Errorf("unknown update mode %q (want sequential or parallel)", sc.Mode)
	}

	switch sc.Strategy {
	case "first", "":
	case "random":
		opts = append(opts, chipfiring.WithSelectionStrategy(chipfiring.RandomActive))
	default:
		return nil, fmt.Errorf("unknown selection strategy %q (want first or random)", sc.Strategy)
	}

	return opts, nil
}

// buildGraph constructs the scenario's topology. The zero-valued Initial
// defaults to an all-zero configuration of the right length.
func (sc *SandpileScenario) buildGraph(opts []chipfiring.Option) (*chipfiring.Graph, error) {
	vertices := 0
	switch sc.Kind {
	case "grid":
		vertices = sc.Width * sc.Height
	case "cycle", "complete", "star", "edges":
		vertices = sc.Size
	default:
		return nil, fmt.Errorf("unknown graph kind %q (want grid, cycle, complete, star or edges)", sc.Kind)
	}

	initial := sc.Initial
	if initial == nil {
		initial = make([]int32, vertices)
	}

	switch sc.Kind {
	case "grid":
		return chipfiring.NewGrid(sc.Width, sc.Height, initial, opts...)
	case "cycle":
		return chipfiring.NewCycle(sc.Size, initial, opts...)
	case "complete":
		return chipfiring.NewComplete(sc.Size, initial, opts...)
	case "star":
		return chipfiring.NewStar(sc.Size, initial, opts...)
	default: // edges
		edges := make([]chipfiring.Edge, len(sc.Edges))
		for i, e := range sc.Edges {
			edges[i] = chipfiring.Edge{From: e[0], To: e[1]}
		}

		return chipfiring.FromEdgeList(edges, sc.Size, initial, opts...)
	}
}
