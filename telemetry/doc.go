// SPDX-License-Identifier: MIT

// Package telemetry exports controller and analysis state as Prometheus
// metrics. A Collector implements both nested.Observer and
// coherence.Observer, so it is wired in with nested.WithObserver and
// coherence.WithObserver.
package telemetry
