// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sic/coherence"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		path       string
		eps, theta float64
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build the coherence matrix, apply friction, cluster and test local collapse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("epsilon") {
				eps = a.cfg.Coherence.Epsilon
			}
			if !cmd.Flags().Changed("theta") {
				theta = a.cfg.Coherence.Theta
			}
			cs, err := loadContexts(path)
			if err != nil {
				return err
			}
			rep, err := coherence.Analyze(cs, eps, theta, a.coherenceOptions()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "contexts: %d\n", rep.Size)
			fmt.Fprintf(out, "gamma before friction: %.4f\n", rep.GammaBefore)
			fmt.Fprintf(out, "gamma after friction (eps=%g): %.4f\n", rep.Epsilon, rep.GammaAfter)
			fmt.Fprintf(out, "sparsity: %.2f\n", rep.Sparsity)
			fmt.Fprintf(out, "clusters: %d\n", len(rep.Clusters))
			for _, c := range rep.Clusters {
				verdict := "coherent"
				if c.Collapse.Collapsed {
					verdict = "collapsed"
				}
				fmt.Fprintf(out, "  cluster %d %v: gamma_k=%.4f (theta=%g) %s\n",
					c.ID, c.Indices, c.Collapse.Gamma, rep.Theta, verdict)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "contexts", "f", "", "YAML context set (default: built-in reference set)")
	cmd.Flags().Float64Var(&eps, "epsilon", 0, "friction threshold (default from config)")
	cmd.Flags().Float64Var(&theta, "theta", 0, "collapse threshold (default from config)")

	return cmd
}
