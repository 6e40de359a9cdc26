// Package metrics exposes Prometheus instrumentation for chain runs.
//
// Every Metrics value owns its registry, so tests and servers never
// collide on the global default registerer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "grubdash"

// Metrics holds the collectors recorded by the request pipeline.
type Metrics struct {
	registry *prometheus.Registry

	// ChainRuns counts finished chain runs by chain name and response status.
	ChainRuns *prometheus.CounterVec

	// ChainDuration observes chain run latency by chain name.
	ChainDuration *prometheus.HistogramVec

	// StageFailures counts short-circuits by chain, failing stage and status.
	StageFailures *prometheus.CounterVec
}

// New creates a Metrics with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ChainRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_runs_total",
			Help:      "Number of validation chain runs by chain and status.",
		}, []string{"chain", "status"}),
		ChainDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chain_duration_seconds",
			Help:      "Time spent running a validation chain, terminal handler included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"chain"}),
		StageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Number of chains stopped by a failing stage.",
		}, []string{"chain", "stage", "status"}),
	}

	m.registry.MustRegister(
		m.ChainRuns,
		m.ChainDuration,
		m.StageFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRun records one completed chain run.
func (m *Metrics) ObserveRun(chain string, status int, elapsed time.Duration) {
	m.ChainRuns.WithLabelValues(chain, strconv.Itoa(status)).Inc()
	m.ChainDuration.WithLabelValues(chain).Observe(elapsed.Seconds())
}

// ObserveFailure records the stage that stopped a chain.
func (m *Metrics) ObserveFailure(chain, stage string, status int) {
	m.StageFailures.WithLabelValues(chain, stage, strconv.Itoa(status)).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
