// Package metrics counts calculator runs, failures and written outputs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector provides Prometheus metrics collection for calculator runs
type PrometheusCollector struct {
	calculationsTotal   *prometheus.CounterVec
	calculationDuration *prometheus.HistogramVec
	errorsTotal         *prometheus.CounterVec
	outputsTotal        *prometheus.CounterVec
	registry            *prometheus.Registry
}

// NewCollector creates a new Prometheus metrics collector on its own registry
func NewCollector() *PrometheusCollector {
	registry := prometheus.NewRegistry()

	calculationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sciencecalc_calculations_total",
			Help: "Total number of calculations by calculator and status",
		},
		[]string{"calculator", "status"},
	)

	calculationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sciencecalc_calculation_duration_seconds",
			Help:    "Duration of calculations including report and chart output",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"calculator"},
	)

	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sciencecalc_errors_total",
			Help: "Total number of failed calculations by calculator and error type",
		},
		[]string{"calculator", "error_type"},
	)

	outputsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sciencecalc_outputs_total",
			Help: "Total number of files written by kind",
		},
		[]string{"kind"},
	)

	registry.MustRegister(calculationsTotal)
	registry.MustRegister(calculationDuration)
	registry.MustRegister(errorsTotal)
	registry.MustRegister(outputsTotal)

	return &PrometheusCollector{
		calculationsTotal:   calculationsTotal,
		calculationDuration: calculationDuration,
		errorsTotal:         errorsTotal,
		outputsTotal:        outputsTotal,
		registry:            registry,
	}
}

// RecordCalculation records the completion of a calculator run
func (m *PrometheusCollector) RecordCalculation(calculator string, status string, elapsed time.Duration) {
	m.calculationsTotal.WithLabelValues(calculator, status).Inc()
	m.calculationDuration.WithLabelValues(calculator).Observe(elapsed.Seconds())
}

// RecordError records a failed run
func (m *PrometheusCollector) RecordError(calculator string, errorType string) {
	m.errorsTotal.WithLabelValues(calculator, errorType).Inc()
}

// RecordOutput records a written chart or JSON file
func (m *PrometheusCollector) RecordOutput(kind string) {
	m.outputsTotal.WithLabelValues(kind).Inc()
}

// WriteTextfile writes the registry to path in the text exposition format
func (m *PrometheusCollector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Registry returns the underlying Prometheus registry
func (m *PrometheusCollector) Registry() *prometheus.Registry {
	return m.registry
}

var (
	_ Collector = (*PrometheusCollector)(nil)
	_ Collector = (*NoopCollector)(nil)
)
