// SPDX-License-Identifier: MIT

// Package sic measures how compatible a set of parametrized contexts are with
// each other, and runs a small event-driven controller whose layers learn at
// different timescales.
//
// 🚀 What is inside?
//
//	contexts/  Context, Kind, Arena and Entity primitives
//	matrix/    dense storage, validators, power iteration
//	coherence/ coherence kernel, coherence matrix, friction, clusters,
//	           global/local collapse, Analyze and Sweep
//	events/    Event values and the bounded ring Queue
//	nested/    reactive, adaptive and environmental tiers plus System
//	telemetry/ Prometheus collector for both halves
//	config/    viper/YAML configuration, zap logger, context-set files
//	cmd/sic    command-line front end
//
// ✨ Quick start
//
//	rep, _ := coherence.Analyze(config.ReferenceContexts(), 0.1, 0.5)
//	fmt.Println(rep.Labels.Groups()) // [[0 1 2 3] [4 5 6] [7 8]]
//
//	sys, _ := nested.NewSystem()
//	sys.ProcessSensor(100)
//	fmt.Println(sys.Snapshot().Position) // 90.9765625
package sic
