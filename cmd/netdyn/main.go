package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "netdyn",
		Short: "Discrete dynamical system engines - Hopfield networks and sandpiles",
		Long: `netdyn runs scripted scenarios against the two engines of the netdyn
library: stochastic Hopfield associative memories and chip-firing
(Abelian sandpile) graphs.

Scenarios are YAML files; see the config schemas under 'netdyn hopfield
--help' and 'netdyn sandpile --help'.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Uint64("seed", 1, "RNG seed (runs replay exactly for a given seed)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newHopfieldCmd(),
		newSandpileCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("netdyn version %s\n", version)
		},
	}
}

// newLogger builds the CLI's diagnostic logger: warnings by default, debug
// with --verbose, always on stderr so scenario output stays clean.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
