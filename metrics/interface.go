package metrics

import "time"

// Collector records what the calculators did during one run.
// Implementations are the Prometheus-backed collector and the no-op
// collector used when no metrics file is requested.
type Collector interface {
	RecordCalculation(calculator string, status string, elapsed time.Duration)
	RecordError(calculator string, errorType string)
	RecordOutput(kind string)
	// WriteTextfile writes the collected metrics in Prometheus text format.
	WriteTextfile(path string) error
}
