// SPDX-License-Identifier: MIT

package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/sic/coherence"
	"github.com/katalvlaran/sic/events"
	"github.com/katalvlaran/sic/nested"
)

const (
	namespace           = "sic"
	controllerSubsystem = "nested"
	analysisSubsystem   = "coherence"
)

// Collector holds every metric the module exports.
type Collector struct {
	// Position is the reactive actuator position.
	Position prometheus.Gauge
	// Gain is the reactive proportional gain.
	Gain prometheus.Gauge
	// Energy is the adaptive tier's accumulated energy.
	Energy prometheus.Gauge

	// SensorReadings counts ProcessSensor calls.
	SensorReadings prometheus.Counter
	// Dispatched counts events dequeued and offered to the tiers.
	Dispatched prometheus.Counter
	// Emitted counts events produced by tiers and queued. Labels: kind.
	Emitted *prometheus.CounterVec
	// Dropped counts events refused by a full queue.
	Dropped prometheus.Counter
	// Adaptations counts ParameterAdjust proposals. Labels: direction (increase, decrease).
	Adaptations *prometheus.CounterVec
	// Truncations counts propagations stopped by the iteration cap.
	Truncations prometheus.Counter
	// Iterations is the distribution of dequeues per propagation.
	Iterations prometheus.Histogram

	// Gamma is Γ of the last analysis. Labels: stage (raw, friction).
	Gamma *prometheus.GaugeVec
	// Clusters is the cluster count of the last analysis.
	Clusters prometheus.Gauge
	// CollapsedClusters is how many of those clusters collapsed.
	CollapsedClusters prometheus.Gauge
	// Analyses counts completed analyses.
	Analyses prometheus.Counter
}

// NewCollector registers all metrics on reg. Registering twice on the same
// registry panics, as promauto does.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Position: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: controllerSubsystem,
			Name: "position", Help: "Reactive actuator position",
		}),
		Gain: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: controllerSubsystem,
			Name: "gain", Help: "Reactive proportional gain",
		}),
		Energy: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: controllerSubsystem,
			Name: "adaptive_energy", Help: "Energy accumulated by the adaptive tier since its last evaluation",
		}),
		SensorReadings: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: controllerSubsystem,
			Name: "sensor_readings_total", Help: "Sensor readings injected",
		}),
		Dispatched: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: controllerSubsystem,
			Name: "events_dispatched_total", Help: "Events dequeued and offered to the tiers",
		}),
		Emitted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: controllerSubsystem,
			Name: "events_emitted_total", Help: "Events emitted by tiers and queued",
		}, []string{"kind"}),
		Dropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: controllerSubsystem,
			Name: "events_dropped_total", Help: "Events discarded by a full queue",
		}),
		Adaptations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: controllerSubsystem,
			Name: "adaptations_total", Help: "Gain adjustments proposed by the adaptive tier",
		}, []string{"direction"}),
		Truncations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: controllerSubsystem,
			Name: "propagations_truncated_total", Help: "Propagations stopped by the iteration cap",
		}),
		Iterations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: controllerSubsystem,
			Name: "propagation_iterations", Help: "Dequeues per sensor reading",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 16, 32, 64, 100},
		}),
		Gamma: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: analysisSubsystem,
			Name: "global_coherence", Help: "Global coherence of the last analysis",
		}, []string{"stage"}),
		Clusters: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: analysisSubsystem,
			Name: "clusters", Help: "Cluster count of the last analysis",
		}),
		CollapsedClusters: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: analysisSubsystem,
			Name: "collapsed_clusters", Help: "Collapsed clusters in the last analysis",
		}),
		Analyses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: analysisSubsystem,
			Name: "analyses_total", Help: "Completed analyses",
		}),
	}
}

// ObservePropagation implements nested.Observer.
func (c *Collector) ObservePropagation(p nested.Propagation, s nested.Snapshot) {
	c.SensorReadings.Inc()
	c.Dispatched.Add(float64(p.Iterations))
	c.Dropped.Add(float64(p.Dropped))
	c.Iterations.Observe(float64(p.Iterations))
	if p.Truncated {
		c.Truncations.Inc()
	}
	for _, e := range p.Emitted {
		c.Emitted.WithLabelValues(e.Kind.String()).Inc()
		if e.Kind == events.ParameterAdjust {
			c.Adaptations.WithLabelValues(direction(e.Extra)).Inc()
		}
	}

	c.Position.Set(s.Position)
	c.Gain.Set(s.Gain)
	c.Energy.Set(s.Energy)
}

// ObserveAnalysis implements coherence.Observer.
func (c *Collector) ObserveAnalysis(r coherence.Report) {
	c.Analyses.Inc()
	c.Gamma.WithLabelValues("raw").Set(r.GammaBefore)
	c.Gamma.WithLabelValues("friction").Set(r.GammaAfter)
	c.Clusters.Set(float64(len(r.Clusters)))
	c.CollapsedClusters.Set(float64(len(r.Collapsed())))
}

func direction(sign int) string {
	if sign > 0 {
		return "increase"
	}

	return "decrease"
}

var (
	_ nested.Observer    = (*Collector)(nil)
	_ coherence.Observer = (*Collector)(nil)
)
