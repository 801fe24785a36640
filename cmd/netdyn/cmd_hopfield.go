package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netdyn/hopfield"
)

func newHopfieldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hopfield",
		Short: "Train a Hopfield network and run a recall scenario",
		Long: `Train a Hopfield network on YAML-declared patterns and recall from a
(possibly noise-corrupted) probe state.

Scenario schema:
  patterns:               # required, bipolar (+1/-1) vectors of equal length
    - [1, -1, 1, -1]
  rule: pseudo-inverse    # or hebbian
  probe: [1, 1, 1, -1]    # optional, defaults to the first pattern
  noise: 0.2              # optional, flip probability per component
  beta: 100               # inverse temperature
  iterations: 50
  async: false            # single-neuron updates instead of full sweeps
  connectivity: 0.8       # optional Erdős–Rényi pruning of the weights

Example:
  netdyn hopfield --config recall.yaml --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			seed, _ := cmd.Flags().GetUint64("seed")
			log := newLogger(cmd)

			sc, err := loadHopfieldScenario(path)
			if err != nil {
				return err
			}
			rule, err := sc.trainingRule()
			if err != nil {
				return err
			}

			net := hopfield.New(len(sc.Patterns[0]), hopfield.WithLogger(log))
			if err := net.Train(sc.Patterns, rule); err != nil {
				if errors.Is(err, hopfield.ErrDimensionMismatch) {
					return fmt.Errorf("training failed (check pattern lengths and correlation): %w", err)
				}

				return fmt.Errorf("training failed: %w", err)
			}
			log.Debug("network trained", "neurons", net.Size(), "patterns", len(sc.Patterns), "rule", rule)

			rng := rand.New(rand.NewPCG(seed, 0))
			if sc.Connectivity >= 0 {
				net.ApplyErdosRenyiTopology(sc.Connectivity, rng)
				log.Debug("topology pruned", "connectivity", sc.Connectivity)
			}

			probe := sc.Probe
			if probe == nil {
				probe = sc.Patterns[0]
			}
			if sc.Noise > 0 {
				probe = hopfield.ApplyNoise(probe, sc.Noise, rng)
			}

			var history [][]float64
			if sc.Async {
				history, _, err = net.RunAsync(probe, sc.Iterations, sc.Beta, rng)
			} else {
				history, _, err = net.Run(probe, sc.Iterations, sc.Beta, rng)
			}
			if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			out := cmd.OutOrStdout()
			for i, state := range history {
				e, err := net.Energy(state)
				if err != nil {
					return fmt.Errorf("energy at step %d: %w", i, err)
				}
				fmt.Fprintf(out, "step %3d  energy %g\n", i, e)
			}

			final := history[len(history)-1]
			if grid, err := hopfield.FormatStateGrid(final); err == nil {
				fmt.Fprintln(out)
				fmt.Fprint(out, grid)
			} else {
				// Non-square states still get a readable summary.
				fmt.Fprintf(out, "\nfinal state: %v\n", final)
			}

			return nil
		},
	}

	cmd.Flags().String("config", "", "Scenario YAML file (required)")
	cmd.MarkFlagRequired("config")

	return cmd
}
