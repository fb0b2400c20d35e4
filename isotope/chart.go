package isotope

import (
	"fmt"

	"sciencecalc/decay"
	"sciencecalc/plot"
)

// Chart draws the curve with dashed markers at the half-life and at half
// the initial amount.
func (c Curve) Chart() plot.Line {
	xs, ys := decay.Split(c.Points)
	half := c.Initial / 2
	hl := c.Isotope.HalfLife

	var end float64
	if len(xs) > 0 {
		end = xs[len(xs)-1]
	}

	return plot.Line{
		Title:  fmt.Sprintf("Decay Curve for %s (Half-life: %v hours)", c.Isotope.Name(), hl),
		XLabel: "Time (hours)",
		YLabel: "Remaining Amount (arbitrary units)",
		Series: []plot.Series{
			{Name: c.Isotope.Name(), X: xs, Y: ys},
			{X: []float64{0, end}, Y: []float64{half, half}, Reference: true},
			{X: []float64{hl, hl}, Y: []float64{0, c.Initial}, Reference: true},
		},
		Annotations: []plot.Annotation{
			{X: hl, Y: half, Label: fmt.Sprintf("Half-life: %v hours", hl)},
		},
	}
}

// CompareChart draws several curves on a log10 axis.
func CompareChart(curves []Curve) plot.Line {
	line := plot.Line{
		Title:  "Comparison of Medical Isotope Decay Rates",
		XLabel: "Time (hours)",
		YLabel: "Remaining Amount (arbitrary units)",
		LogY:   true,
		Width:  1200,
		Height: 800,
	}
	for _, c := range curves {
		xs, ys := decay.Split(c.Points)
		line.Series = append(line.Series, plot.Series{
			Name: fmt.Sprintf("%s (t½=%vh)", c.Isotope.Name(), c.Isotope.HalfLife),
			X:    xs,
			Y:    ys,
		})
	}
	return line
}

// Chart plots simulated survivors against the analytic curve.
func (s Simulation) Chart() plot.Line {
	survivors := make([]float64, len(s.Survivors))
	for i, n := range s.Survivors {
		survivors[i] = float64(n)
	}
	return plot.Line{
		Title:  fmt.Sprintf("Monte Carlo Decay of %s (%d atoms)", s.Isotope.Name(), s.Atoms),
		XLabel: "Time (hours)",
		YLabel: "Surviving Atoms",
		Series: []plot.Series{
			{Name: "simulated", X: s.Times, Y: survivors},
			{Name: "analytic", X: s.Times, Y: s.Expected},
		},
	}
}
