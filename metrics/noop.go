package metrics

import "time"

// NoopCollector discards everything.
type NoopCollector struct{}

// NewNoopCollector creates a no-op collector
func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

// RecordCalculation does nothing
func (n *NoopCollector) RecordCalculation(calculator string, status string, elapsed time.Duration) {
}

// RecordError does nothing
func (n *NoopCollector) RecordError(calculator string, errorType string) {
}

// RecordOutput does nothing
func (n *NoopCollector) RecordOutput(kind string) {
}

// WriteTextfile does nothing
func (n *NoopCollector) WriteTextfile(path string) error {
	return nil
}
