package shielding

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"sciencecalc/decay"
	"sciencecalc/plot"
)

// Report formats a material comparison as a table.
func Report(initial, target float64, options []Option) string {
	var b strings.Builder
	b.WriteString("Radiation Shielding Analysis\n")
	b.WriteString("===========================\n")
	fmt.Fprintf(&b, "Initial Intensity: %s\n", humanize.Ftoa(initial))
	fmt.Fprintf(&b, "Target Intensity: %s\n", humanize.Ftoa(target))
	b.WriteString("\nRequired shielding for different materials:\n")

	fmt.Fprintf(&b, "\n%-10s %-15s %-15s %-15s\n", "Material", "Thickness (cm)", "Weight (kg)", "Cost (USD)")
	b.WriteString(strings.Repeat("-", 55) + "\n")
	for _, o := range options {
		fmt.Fprintf(&b, "%-10s %-15.2f %-15.2f %-15.2f\n", title(o.Material), o.Thickness, o.Weight, o.Cost)
	}
	return b.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Chart draws attenuation through every material on a log10 axis.
func Chart(curves []Curve) plot.Line {
	line := plot.Line{
		Title:  "Radiation Attenuation by Material",
		XLabel: "Shield Thickness (cm)",
		YLabel: "Radiation Intensity (relative units)",
		LogY:   true,
	}
	for _, c := range curves {
		xs, ys := decay.Split(c.Points)
		line.Series = append(line.Series, plot.Series{Name: title(c.Material), X: xs, Y: ys})
	}
	return line
}
