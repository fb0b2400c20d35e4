package goldenergy

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// Report formats a conversion result.
func Report(r Result) string {
	var b strings.Builder
	b.WriteString("Gold to Energy Conversion Report\n")
	b.WriteString("==============================\n")
	b.WriteString("Input Parameters:\n")
	b.WriteString("----------------\n")
	fmt.Fprintf(&b, "Gold Reserves: %s metric tons\n", money(r.ReservesTons))
	fmt.Fprintf(&b, "Gold Price: $%s per troy ounce\n", money(r.GoldPrice))
	fmt.Fprintf(&b, "Oil Price: $%s per barrel\n\n", money(r.OilPrice))

	b.WriteString("Conversion Results:\n")
	b.WriteString("-----------------\n")
	fmt.Fprintf(&b, "Gold in Troy Ounces: %s\n", money(r.TroyOunces))
	fmt.Fprintf(&b, "Total Gold Value: $%s\n", money(r.GoldValue))
	fmt.Fprintf(&b, "Equivalent Oil Barrels: %s\n", money(r.OilBarrels))
	fmt.Fprintf(&b, "Energy Generation Potential: %s Petajoules\n", money(r.EnergyPJ))
	fmt.Fprintf(&b, "Years of US Energy Consumption: %.2f\n\n", r.YearsOfUS)

	b.WriteString("Additional Metrics:\n")
	b.WriteString("-----------------\n")
	fmt.Fprintf(&b, "Monthly Energy Coverage: %.1f months\n", r.MonthsOfUS)
	fmt.Fprintf(&b, "Daily Energy Equivalent: %s Petajoules/day\n", money(r.DailyEnergy))
	return b.String()
}
