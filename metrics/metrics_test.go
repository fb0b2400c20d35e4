package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector_RecordCalculation(t *testing.T) {
	collector := NewCollector()

	collector.RecordCalculation("isotope", "success", 2*time.Millisecond)
	collector.RecordCalculation("isotope", "success", 3*time.Millisecond)
	collector.RecordCalculation("isotope", "error", time.Millisecond)
	collector.RecordCalculation("shield", "success", time.Millisecond)

	assert.Equal(t, 3, testutil.CollectAndCount(collector.calculationsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.calculationsTotal.WithLabelValues("isotope", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.calculationsTotal.WithLabelValues("isotope", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.calculationDuration))
}

func TestPrometheusCollector_RecordError(t *testing.T) {
	collector := NewCollector()

	collector.RecordError("shield", "unknown_key")
	collector.RecordError("shield", "unknown_key")
	collector.RecordError("isotope", "invalid_parameter")

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.errorsTotal.WithLabelValues("shield", "unknown_key")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.errorsTotal.WithLabelValues("isotope", "invalid_parameter")))
}

func TestPrometheusCollector_RecordOutput(t *testing.T) {
	collector := NewCollector()

	collector.RecordOutput("chart")
	collector.RecordOutput("chart")
	collector.RecordOutput("json")

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.outputsTotal.WithLabelValues("chart")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.outputsTotal.WithLabelValues("json")))
}

func TestPrometheusCollector_WriteTextfile(t *testing.T) {
	collector := NewCollector()
	collector.RecordCalculation("gold", "success", time.Millisecond)

	path := filepath.Join(t.TempDir(), "sciencecalc.prom")
	require.NoError(t, collector.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sciencecalc_calculations_total{calculator="gold",status="success"} 1`)
}

func TestPrometheusCollector_Registry(t *testing.T) {
	collector := NewCollector()
	collector.RecordCalculation("planck", "success", time.Millisecond)
	collector.RecordError("planck", "unknown_key")

	count, err := testutil.GatherAndCount(collector.Registry(),
		"sciencecalc_calculations_total",
		"sciencecalc_calculation_duration_seconds",
		"sciencecalc_errors_total",
		"sciencecalc_outputs_total",
	)
	require.NoError(t, err)
	// outputs_total has no series until a file is written
	assert.Equal(t, 3, count)
}

func TestNoopCollector(t *testing.T) {
	var c Collector = NewNoopCollector()
	c.RecordCalculation("gold", "success", time.Second)
	c.RecordError("gold", "unknown")
	c.RecordOutput("chart")
	assert.NoError(t, c.WriteTextfile(filepath.Join(t.TempDir(), "never-written.prom")))
}
