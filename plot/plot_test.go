package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func curve() Line {
	return Line{
		Title:  "Decay",
		XLabel: "Time (hours)",
		YLabel: "Remaining",
		Series: []Series{
			{Name: "A", X: []float64{0, 1, 2, 3}, Y: []float64{1000, 500, 250, 125}},
			{Name: "B", X: []float64{0, 1, 2, 3}, Y: []float64{1000, 800, 640, 512}},
			{X: []float64{0, 3}, Y: []float64{500, 500}, Reference: true},
		},
		Annotations: []Annotation{{X: 1, Y: 500, Label: "half-life"}},
	}
}

func TestLine_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, curve().Render(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestLine_LogY(t *testing.T) {
	l := curve()
	l.LogY = true

	graph, err := l.Chart()
	require.NoError(t, err)
	assert.Equal(t, "log10 Remaining", graph.YAxis.Name)
	// two curves, one reference line, one annotation series
	assert.Len(t, graph.Series, 4)
	assert.Len(t, graph.Elements, 1)

	var buf bytes.Buffer
	require.NoError(t, l.Render(&buf))
}

func TestLine_LogYSkipsUnderflow(t *testing.T) {
	l := Line{
		LogY: true,
		Series: []Series{
			{Name: "fast", X: []float64{0, 1, 2, 3}, Y: []float64{1000, 10, 0.1, 0}},
			{Name: "slow", X: []float64{0, 1, 2, 3}, Y: []float64{1000, 900, 810, 729}},
		},
		Annotations: []Annotation{{X: 3, Y: 0, Label: "gone"}},
	}
	graph, err := l.Chart()
	require.NoError(t, err)
	// two curves, no annotation series
	require.Len(t, graph.Series, 2)

	fast, ok := graph.Series[0].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1, 2}, fast.XValues)
	assert.InDeltaSlice(t, []float64{3, 1, -1}, fast.YValues, 1e-12)

	var buf bytes.Buffer
	require.NoError(t, l.Render(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestLine_LogYRejectsAllNonPositive(t *testing.T) {
	l := Line{
		LogY:   true,
		Series: []Series{{Name: "zero", X: []float64{0, 1}, Y: []float64{0, 0}}},
	}
	_, err := l.Chart()
	assert.ErrorIs(t, err, ErrNonPositive)
}

func TestLine_Errors(t *testing.T) {
	_, err := Line{}.Chart()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Line{Series: []Series{{X: []float64{1, 2}, Y: []float64{1}}}}.Chart()
	assert.Error(t, err)
}

func TestLine_YRange(t *testing.T) {
	l := curve()
	l.YRange = &Range{Min: -0.5, Max: 12}
	graph, err := l.Chart()
	require.NoError(t, err)
	require.NotNil(t, graph.YAxis.Range)
	assert.Equal(t, -0.5, graph.YAxis.Range.GetMin())
	assert.Equal(t, 12.0, graph.YAxis.Range.GetMax())
}

func TestLine_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decay.png")
	require.NoError(t, curve().Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestBars_Render(t *testing.T) {
	b := Bars{
		Title:  "Initial Population Distribution",
		Labels: []string{"0-14", "15-24", "25-54"},
		Values: []float64{250000, 150000, 350000},
	}
	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestBars_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Bars{}.Render(&buf), ErrEmpty)
	assert.Error(t, Bars{Labels: []string{"a"}, Values: []float64{1, 2}}.Render(&buf))
}
