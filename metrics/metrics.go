// SPDX-License-Identifier: MIT
// Package: mwis/metrics
//
// metrics.go - Prometheus instrumentation of solver runs.

// Package metrics records solver runs as Prometheus metrics labeled by
// algorithm, on a private registry that can be dumped in text format.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/mwis/solver"
)

const namespace = "mwis"

// Recorder owns one registry and the solver metric families.
type Recorder struct {
	reg *prometheus.Registry

	runs      *prometheus.CounterVec
	failures  *prometheus.CounterVec
	rounds    *prometheus.HistogramVec
	messages  *prometheus.CounterVec
	updates   *prometheus.CounterVec
	weight    *prometheus.GaugeVec
	size      *prometheus.GaugeVec
	converged *prometheus.GaugeVec
	duration  *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	labels := []string{"algorithm"}
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "solver", Name: "runs_total",
			Help: "Completed solver runs.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "solver", Name: "failures_total",
			Help: "Solver runs that returned an error.",
		}, labels),
		rounds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "solver", Name: "rounds",
			Help:    "Synchronous rounds (annealing: temperature steps) per run.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, labels),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "solver", Name: "messages_total",
			Help: "Neighbor lookups exchanged by the simulated protocol.",
		}, labels),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "solver", Name: "spin_updates_total",
			Help: "Accepted annealing spin flips.",
		}, labels),
		weight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "solver", Name: "set_weight",
			Help: "Total weight of the last independent set.",
		}, labels),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "solver", Name: "set_size",
			Help: "Vertex count of the last independent set.",
		}, labels),
		converged: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "solver", Name: "converged",
			Help: "1 if the last run decided every vertex, 0 otherwise.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "solver", Name: "duration_seconds",
			Help:    "Wall time per run.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
	r.reg.MustRegister(r.runs, r.failures, r.rounds, r.messages, r.updates,
		r.weight, r.size, r.converged, r.duration)
	return r
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe records one finished solve.
func (r *Recorder) Observe(res solver.Result, elapsed time.Duration) {
	algo := res.Algorithm.String()
	r.runs.WithLabelValues(algo).Inc()
	r.rounds.WithLabelValues(algo).Observe(float64(res.Stats.Rounds))
	r.messages.WithLabelValues(algo).Add(float64(res.Stats.Messages))
	r.updates.WithLabelValues(algo).Add(float64(res.Stats.Updates))
	r.weight.WithLabelValues(algo).Set(res.Weight)
	r.size.WithLabelValues(algo).Set(float64(res.Len()))
	conv := 0.0
	if res.Converged {
		conv = 1
	}
	r.converged.WithLabelValues(algo).Set(conv)
	r.duration.WithLabelValues(algo).Observe(elapsed.Seconds())
}

// ObserveError records a failed solve.
func (r *Recorder) ObserveError(algo solver.Algorithm) {
	r.failures.WithLabelValues(algo.String()).Inc()
}

// WriteText gathers the registry and writes it in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
