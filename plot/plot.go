// Package plot renders calculator output as PNG charts.
//
// Calculators never draw anything themselves. They describe a chart as a
// Line (ordered (x, y) series) or Bars value and hand it to Render or Save.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	ErrEmpty       = errors.New("plot: nothing to draw")
	ErrNonPositive = errors.New("plot: log scale needs positive values")
)

var referenceColor = drawing.Color{R: 214, G: 39, B: 40, A: 180}

// Series is one named curve. X and Y must have equal length.
type Series struct {
	Name string
	X    []float64
	Y    []float64

	// Reference series are drawn as thin dashed red lines, e.g. a
	// half-life marker or the r = 0 singularity.
	Reference bool
}

// Annotation is a labelled point on the chart.
type Annotation struct {
	X, Y  float64
	Label string
}

// Range fixes the y-axis bounds.
type Range struct {
	Min, Max float64
}

// Line is a line chart description.
type Line struct {
	Title  string
	XLabel string
	YLabel string

	Series      []Series
	Annotations []Annotation

	// LogY plots log10(y). Points and annotations with y <= 0 are left
	// out, as they have no place on a log axis.
	LogY   bool
	YRange *Range

	Width  int
	Height int
}

func (l Line) size() (int, int) {
	w, h := l.Width, l.Height
	if w == 0 {
		w = 1000
	}
	if h == 0 {
		h = 600
	}
	return w, h
}

// logPoints keeps the (x, y) pairs with y > 0 and returns log10(y) for
// them. A series left with no points is an error.
func logPoints(name string, xs, ys []float64) ([]float64, []float64, error) {
	outX := make([]float64, 0, len(xs))
	outY := make([]float64, 0, len(ys))
	for i, y := range ys {
		if !(y > 0) {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, math.Log10(y))
	}
	if len(outY) == 0 {
		return nil, nil, fmt.Errorf("%w: series %q has no positive values", ErrNonPositive, name)
	}
	return outX, outY, nil
}

// Chart converts l into a go-chart chart.
func (l Line) Chart() (*chart.Chart, error) {
	if len(l.Series) == 0 {
		return nil, ErrEmpty
	}
	width, height := l.size()

	yLabel := l.YLabel
	if l.LogY {
		yLabel = fmt.Sprintf("log10 %s", l.YLabel)
	}

	graph := &chart.Chart{
		Title:  l.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{
				Top:  50,
				Left: 20,
			},
		},
		XAxis: chart.XAxis{Name: l.XLabel},
		YAxis: chart.YAxis{Name: yLabel},
	}
	if l.YRange != nil {
		graph.YAxis.Range = &chart.ContinuousRange{Min: l.YRange.Min, Max: l.YRange.Max}
	}

	named := 0
	for i, s := range l.Series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("plot: series %q has %d x values and %d y values", s.Name, len(s.X), len(s.Y))
		}
		xs, ys := s.X, s.Y
		if l.LogY {
			var err error
			if xs, ys, err = logPoints(s.Name, s.X, s.Y); err != nil {
				return nil, err
			}
		}
		style := chart.Style{
			StrokeColor: chart.GetDefaultColor(i),
			StrokeWidth: 2,
		}
		if s.Reference {
			style.StrokeColor = referenceColor
			style.StrokeWidth = 1
			style.StrokeDashArray = []float64{5.0, 5.0}
		}
		if s.Name != "" {
			named++
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   style,
		})
	}

	var values []chart.Value2
	for _, a := range l.Annotations {
		y := a.Y
		if l.LogY {
			// off the log axis
			if !(y > 0) {
				continue
			}
			y = math.Log10(y)
		}
		values = append(values, chart.Value2{XValue: a.X, YValue: y, Label: a.Label})
	}
	if len(values) > 0 {
		graph.Series = append(graph.Series, chart.AnnotationSeries{Annotations: values})
	}

	if named > 1 {
		graph.Elements = []chart.Renderable{chart.Legend(graph)}
	}
	return graph, nil
}

// Render writes l to w as PNG.
func (l Line) Render(w io.Writer) error {
	graph, err := l.Chart()
	if err != nil {
		return err
	}
	return graph.Render(chart.PNG, w)
}

// Save renders l into the PNG file at path.
func (l Line) Save(path string) error {
	return save(path, l.Render)
}

// Bars is a bar chart description.
type Bars struct {
	Title  string
	Labels []string
	Values []float64

	// Max is the top of the y-axis; zero means the largest value plus 10%.
	Max float64

	Width    int
	Height   int
	BarWidth int
}

// Render writes b to w as PNG.
func (b Bars) Render(w io.Writer) error {
	if len(b.Values) == 0 {
		return ErrEmpty
	}
	if len(b.Labels) != len(b.Values) {
		return fmt.Errorf("plot: %d labels for %d bars", len(b.Labels), len(b.Values))
	}

	var values []chart.Value
	top := b.Max
	for i, v := range b.Values {
		values = append(values, chart.Value{Label: b.Labels[i], Value: v})
		if b.Max == 0 && v*1.1 > top {
			top = v * 1.1
		}
	}

	width, height, barWidth := b.Width, b.Height, b.BarWidth
	if width == 0 {
		width = 720
	}
	if height == 0 {
		height = 512
	}
	if barWidth == 0 {
		barWidth = 60
	}

	graph := chart.BarChart{
		Title: b.Title,
		Background: chart.Style{
			Padding: chart.Box{
				Top: 50,
			},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: top,
			},
		},
		Width:    width,
		Height:   height,
		BarWidth: barWidth,
		Bars:     values,
	}
	return graph.Render(chart.PNG, w)
}

// Save renders b into the PNG file at path.
func (b Bars) Save(path string) error {
	return save(path, b.Render)
}

func save(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render(f)
}
