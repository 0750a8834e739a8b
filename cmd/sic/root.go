// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sic/coherence"
	"github.com/katalvlaran/sic/config"
	"github.com/katalvlaran/sic/contexts"
	"github.com/katalvlaran/sic/telemetry"
)

// app carries what every subcommand shares once PersistentPreRunE has run.
type app struct {
	cfgPath  string
	logLevel string
	metrics  bool

	cfg       *config.Config
	log       *zap.Logger
	registry  *prometheus.Registry
	collector *telemetry.Collector
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "sic",
		Short:         "Contextual coherence analysis and nested event-driven learning",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.finish(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	pf.BoolVar(&a.metrics, "metrics", false, "print collected Prometheus metrics after the command")

	root.AddCommand(newAnalyzeCmd(a), newSweepCmd(a), newLearnCmd(a))

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if cmd.Flags().Changed("metrics") {
		cfg.Metrics.Enabled = a.metrics
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		a.collector = telemetry.NewCollector(a.registry)
	}

	return nil
}

func (a *app) finish(cmd *cobra.Command) error {
	defer func() { _ = a.log.Sync() }()
	if a.registry == nil {
		return nil
	}
	mfs, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}

// coherenceOptions wires the logger, the collector and the worker bound.
func (a *app) coherenceOptions() []coherence.Option {
	opts := []coherence.Option{
		coherence.WithLogger(a.log),
		coherence.WithWorkers(a.cfg.Coherence.Workers),
	}
	if a.collector != nil {
		opts = append(opts, coherence.WithObserver(a.collector))
	}

	return opts
}

// loadContexts reads path, or returns the reference set when path is empty.
func loadContexts(path string) ([]contexts.Context, error) {
	if path == "" {
		return config.ReferenceContexts(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return config.LoadContexts(f)
}
