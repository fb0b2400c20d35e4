package worldline

import (
	"fmt"
	"strings"

	"sciencecalc/plot"
)

// Report lists the derived quantities.
func (r Result) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ratio of final to initial proper time: %.2f\n", r.TimeRatio)
	fmt.Fprintf(&b, "Maximum spatial separation between worldlines: %.2f\n", r.MaxSeparation)
	fmt.Fprintf(&b, "Estimated proper time remaining for observer: %.2f\n", r.RemainingTime)
	return b.String()
}

func (r Result) Chart() plot.Line {
	var end float64
	if n := len(r.Times); n > 0 {
		end = r.Times[n-1]
	}
	var last float64
	if n := len(r.Observer); n > 0 {
		last = r.Observer[n-1]
	}
	annotations := []plot.Annotation{
		{X: 40, Y: 0.2, Label: "Singularity"},
		{X: end, Y: last, Label: "Observer reaches infinity in finite proper time"},
	}
	if end >= Accumulation {
		annotations = append(annotations, plot.Annotation{X: Accumulation, Y: 0, Label: "Accumulation Point"})
	}
	return plot.Line{
		Title:  "Worldlines in Malament-Hogarth Spacetime",
		XLabel: "Proper Time τ",
		YLabel: "Radial Coordinate r",
		Series: []plot.Series{
			{Name: "Observer Worldline", X: r.Times, Y: r.Observer},
			{Name: "Computer Worldline", X: r.Times, Y: r.Computer},
			{X: []float64{0, end}, Y: []float64{0, 0}, Reference: true},
		},
		Annotations: annotations,
		YRange:      &plot.Range{Min: -0.5, Max: 12},
		Height:      800,
	}
}
