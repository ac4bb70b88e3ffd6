package observability

import (
	"fmt"

	"github.com/authcorp/libs/go/maybe/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for a law checker run.
type Metrics struct {
	registry *prometheus.Registry

	LawChecksTotal       *prometheus.CounterVec
	TestsTotal           *prometheus.CounterVec
	SuiteDurationSeconds *prometheus.HistogramVec
	LastRunSuccess       prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered on
// a registry of its own.
func NewMetrics(cfg *config.Config) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	namespace := cfg.Metrics.Namespace

	return &Metrics{
		registry: reg,
		LawChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "law_checks_total",
				Help:      "Total number of law properties checked",
			},
			[]string{"suite", "status"},
		),
		TestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tests_total",
				Help:      "Total number of generated test cases that satisfied a law",
			},
			[]string{"suite"},
		),
		SuiteDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "suite_duration_seconds",
				Help:      "Time taken to check a law suite in seconds",
				Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"suite"},
		),
		LastRunSuccess: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_success",
				Help:      "Whether every law held in the last run (1) or not (0)",
			},
		),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordLaw records the outcome of one law property.
func (m *Metrics) RecordLaw(suite, status string, succeeded int) {
	m.LawChecksTotal.WithLabelValues(suite, status).Inc()
	m.TestsTotal.WithLabelValues(suite).Add(float64(succeeded))
}

// RecordSuiteDuration records the time taken by a suite.
func (m *Metrics) RecordSuiteDuration(suite string, seconds float64) {
	m.SuiteDurationSeconds.WithLabelValues(suite).Observe(seconds)
}

// SetRunSuccess records whether the whole run passed.
func (m *Metrics) SetRunSuccess(passed bool) {
	if passed {
		m.LastRunSuccess.Set(1)
	} else {
		m.LastRunSuccess.Set(0)
	}
}

// WriteTextfile writes the metrics in the text exposition format to path,
// for collection by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
