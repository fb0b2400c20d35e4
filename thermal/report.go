package thermal

import (
	"fmt"
	"strings"
)

// Report describes one absorption result.
func Report(energyJ float64, r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Energy Input: %.2f MJ\n", energyJ/1e6)
	fmt.Fprintf(&b, "Final Temperature: %.2f°C\n", r.FinalTemperature)
	fmt.Fprintf(&b, "Phase: %s\n", r.Phase)
	if r.Phase == Mixed {
		fmt.Fprintf(&b, "Vapor Fraction: %.2f%%\n", r.VaporFraction*100)
	}
	return b.String()
}
