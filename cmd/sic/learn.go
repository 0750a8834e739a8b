// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sic/config"
	"github.com/katalvlaran/sic/events"
	"github.com/katalvlaran/sic/nested"
)

func newLearnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "learn [reading...]",
		Short: "Feed sensor readings through the nested controller",
		Long: `Each reading is injected as a SensorChange and propagated through the
reactive, adaptive and environmental tiers. Without arguments the built-in
reference sequence is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			readings := config.ReferenceReadings()
			if len(args) > 0 {
				readings = make([]float64, 0, len(args))
				for _, s := range args {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("reading %q: %w", s, err)
					}
					readings = append(readings, v)
				}
			}

			opts := []nested.Option{
				nested.WithConfig(a.cfg.NestedConfig()),
				nested.WithLogger(a.log),
			}
			if a.collector != nil {
				opts = append(opts, nested.WithObserver(a.collector))
			}
			sys, err := nested.NewSystem(opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range readings {
				p := sys.ProcessSensor(v)
				s := sys.Snapshot()
				fmt.Fprintf(out, "sensor=%7.1f position=%6.2f gain=%.2f energy=%7.2f steps=%d",
					v, s.Position, s.Gain, s.Energy, p.Iterations)
				if n := p.Count(events.ParameterAdjust); n > 0 {
					fmt.Fprintf(out, " adjust=%d", n)
				}
				if p.Dropped > 0 {
					fmt.Fprintf(out, " dropped=%d", p.Dropped)
				}
				fmt.Fprintln(out)
			}
			s := sys.Snapshot()
			fmt.Fprintf(out, "final position %.2f, %d evaluation(s)\n", s.Position, s.Evaluations)

			return nil
		},
	}
}
