package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sciencecalc/decay"
	"sciencecalc/goldenergy"
)

func goldCmd(e *env) *cobra.Command {
	var (
		reserves   float64
		goldPrices []float64
		oilPrices  []float64
	)
	cmd := &cobra.Command{
		Use:   "gold",
		Short: "Gold reserves expressed as oil energy",
		Long: "Converts gold reserves to energy for each (gold price, oil price) pair.\n" +
			"The first pair is the base scenario; any further pairs are alternatives.",
		RunE: e.run("gold", func(cmd *cobra.Command) error {
			if len(goldPrices) != len(oilPrices) {
				return fmt.Errorf("%w: %d gold prices for %d oil prices", decay.ErrInvalidParameter, len(goldPrices), len(oilPrices))
			}
			out := cmd.OutOrStdout()
			var results []goldenergy.Result
			for i := range goldPrices {
				r, err := goldenergy.Convert(goldenergy.Input{
					ReservesTons: reserves,
					GoldPrice:    goldPrices[i],
					OilPrice:     oilPrices[i],
				})
				if err != nil {
					return err
				}
				if i == 1 {
					fmt.Fprintln(out, "\nAlternative Scenario (with different prices):")
				}
				fmt.Fprintf(out, "\n%s", goldenergy.Report(r))
				results = append(results, r)
			}
			return e.saveJSON("gold", results)
		}),
	}
	cmd.Flags().Float64Var(&reserves, "reserves", 8133.5, "gold reserves, metric tons")
	cmd.Flags().Float64SliceVar(&goldPrices, "gold-price", []float64{2400, 2500}, "gold price per troy ounce, USD")
	cmd.Flags().Float64SliceVar(&oilPrices, "oil-price", []float64{80, 70}, "oil price per barrel, USD")
	return cmd
}
