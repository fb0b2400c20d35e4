package isotope

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultFractions are the activity levels reported by ActivityReport
// when none are given.
var DefaultFractions = []float64{0.5, 0.25, 0.1, 0.01}

// ActivityReport lists the time the named isotope needs to reach each
// fraction of its initial activity.
func ActivityReport(name string, fractions []float64) (string, error) {
	if len(fractions) == 0 {
		fractions = DefaultFractions
	}
	iso, err := Resolve(name)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Time to reach specific activity levels for %s (%s):\n", iso.Name(), iso.Use)
	for _, f := range fractions {
		hours, err := ActivityTime(name, f)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "Time to reach %.1f%% activity: %.2f hours\n", f*100, hours)
	}
	return b.String(), nil
}

// TableReport lists every medical isotope with its half-life.
func TableReport() (string, error) {
	table, err := Medical()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-4s %-4s %-16s %s\n", "Isotope", "Z", "A", "Half-life (h)", "Use")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	table.Each(func(name string, iso Isotope) {
		fmt.Fprintf(&b, "%-8s %-4d %-4d %-16s %s\n",
			name, iso.Number, iso.Mass, humanize.FormatFloat("#,###.##", iso.HalfLife), iso.Use)
	})
	return b.String(), nil
}

// SimulationReport summarises a Monte Carlo run against the analytic law.
func SimulationReport(s Simulation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Monte Carlo decay of %s\n", s.Isotope.Name())
	fmt.Fprintf(&b, "Atoms: %s, steps: %d\n\n", humanize.Comma(int64(s.Atoms)), len(s.Times)-1)
	fmt.Fprintf(&b, "%-12s %-12s %-12s %s\n", "Time (h)", "Simulated", "Analytic", "Deviation")
	b.WriteString(strings.Repeat("-", 50) + "\n")

	stride := len(s.Times) / 10
	if stride == 0 {
		stride = 1
	}
	for i := 0; i < len(s.Times); i += stride {
		fmt.Fprintf(&b, "%-12.2f %-12d %-12.1f %+.2f%%\n",
			s.Times[i], s.Survivors[i], s.Expected[i], deviation(s.Survivors[i], s.Expected[i]))
	}
	last := len(s.Times) - 1
	if last%stride != 0 {
		fmt.Fprintf(&b, "%-12.2f %-12d %-12.1f %+.2f%%\n",
			s.Times[last], s.Survivors[last], s.Expected[last], deviation(s.Survivors[last], s.Expected[last]))
	}
	return b.String()
}

func deviation(simulated int, expected float64) float64 {
	if expected == 0 {
		return 0
	}
	return (float64(simulated) - expected) / expected * 100
}
