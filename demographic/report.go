package demographic

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"sciencecalc/plot"
)

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// Report is a detailed text report of the analysis.
func Report(p Params, m Metrics) string {
	var b strings.Builder
	b.WriteString("Population Demographics Analysis\n")
	b.WriteString("================================\n\n")

	b.WriteString("Input Parameters:\n")
	fmt.Fprintf(&b, "Base Mortality Rate: %s\n", percent(p.BaseMortalityRate))
	fmt.Fprintf(&b, "Life Expectancy: %v years\n", p.LifeExpectancy)
	fmt.Fprintf(&b, "Population Size: %s\n", humanize.Comma(int64(p.PopulationSize)))
	fmt.Fprintf(&b, "Healthcare Access Level: %s\n", percent(p.HealthcareAccess))
	fmt.Fprintf(&b, "Infrastructure Quality: %s\n\n", percent(p.InfrastructureQuality))

	b.WriteString("Results by Age Group:\n")
	b.WriteString("--------------------\n")
	for _, g := range m.Groups {
		fmt.Fprintf(&b, "\n%s:\n", g.Group)
		fmt.Fprintf(&b, "  Initial Population: %s\n", humanize.Comma(int64(g.Initial)))
		fmt.Fprintf(&b, "  Survival Rate: %s\n", percent(g.Survival))
		fmt.Fprintf(&b, "  Final Population: %s\n", humanize.Comma(int64(g.Surviving)))
	}

	b.WriteString("\nOverall Results:\n")
	fmt.Fprintf(&b, "Total Initial Population: %s\n", humanize.Comma(int64(m.Total.Initial)))
	fmt.Fprintf(&b, "Average Survival Rate: %s\n", percent(m.Total.Survival))
	fmt.Fprintf(&b, "Total Final Population: %s\n", humanize.Comma(int64(m.Total.Surviving)))
	return b.String()
}

// Pyramid returns bar charts of the initial and final population per age
// group, sharing one y-axis scale.
func Pyramid(m Metrics) (initial, final plot.Bars) {
	labels := make([]string, len(m.Groups))
	before := make([]float64, len(m.Groups))
	after := make([]float64, len(m.Groups))
	top := 0.0
	for i, g := range m.Groups {
		labels[i] = g.Group
		before[i] = float64(g.Initial)
		after[i] = float64(g.Surviving)
		if before[i] > top {
			top = before[i]
		}
	}
	top *= 1.1

	initial = plot.Bars{Title: "Initial Population Distribution", Labels: labels, Values: before, Max: top}
	final = plot.Bars{Title: "Final Population Distribution", Labels: labels, Values: after, Max: top}
	return initial, final
}
