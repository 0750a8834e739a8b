// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sic/coherence"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		path  string
		steps int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Print the percolation curve: cluster count against friction threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.Coherence.SweepSteps
			}
			cs, err := loadContexts(path)
			if err != nil {
				return err
			}
			points, err := coherence.Sweep(cmd.Context(), coherence.FromContexts(cs),
				coherence.DefaultEpsilons(steps), a.coherenceOptions()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "epsilon\tclusters\tgiant")
			for _, p := range points {
				fmt.Fprintf(out, "%.4f\t%d\t%.3f\n", p.Epsilon, p.Clusters, p.GiantFraction)
			}
			if eps, ok := coherence.CriticalEpsilon(points); ok {
				fmt.Fprintf(out, "critical epsilon: %.4f\n", eps)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "contexts", "f", "", "YAML context set (default: built-in reference set)")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of thresholds in [0.01, 0.99] (default from config)")

	return cmd
}
