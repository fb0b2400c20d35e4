package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sciencecalc/decay"
	"sciencecalc/plot"
	"sciencecalc/thermal"
)

func nuclearCmd(e *env) *cobra.Command {
	var (
		energies    []float64
		mass        float64
		coefficient float64
		halfLife    float64
	)
	cmd := &cobra.Command{
		Use:   "nuclear",
		Short: "Water heating, shielding and decay bench calculations",
		RunE: e.run("nuclear", func(cmd *cobra.Command) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Water Heating Analysis")
			fmt.Fprintln(out, "=====================")
			var results []thermal.Result
			for _, energy := range energies {
				r, err := thermal.Absorb(energy, mass)
				if err != nil {
					return err
				}
				results = append(results, r)
				fmt.Fprintf(out, "\n%s", thermal.Report(energy, r))
			}

			shield, err := decay.NewParams(1000, coefficient)
			if err != nil {
				return err
			}
			intensities, err := decay.Sweep(shield, 100, 100)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nRadiation Shielding Analysis")
			fmt.Fprintln(out, "===========================")
			fmt.Fprintf(out, "Intensity after 100 cm at mu = %v/cm: %.4f\n", coefficient, intensities[len(intensities)-1].Y)

			source, err := decay.FromHalfValue(1000, halfLife)
			if err != nil {
				return err
			}
			amounts, err := decay.Sweep(source, 10, 100)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nIsotope Decay Analysis")
			fmt.Fprintln(out, "=====================")
			fmt.Fprintf(out, "Amount after 10 time units (half-life %v): %.4f\n", halfLife, amounts[len(amounts)-1].Y)

			xs, ys := decay.Split(intensities)
			err = e.saveChart("nuclear-shielding", plot.Line{
				Title:  "Radiation Intensity vs. Shielding Thickness",
				XLabel: "Shield Thickness (cm)",
				YLabel: "Radiation Intensity",
				LogY:   true,
				Series: []plot.Series{{Name: "intensity", X: xs, Y: ys}},
			})
			if err != nil {
				return err
			}
			xs, ys = decay.Split(amounts)
			err = e.saveChart("nuclear-decay", plot.Line{
				Title:  "Radioactive Decay",
				XLabel: "Time (half-lives)",
				YLabel: "Amount Remaining",
				Series: []plot.Series{{Name: "amount", X: xs, Y: ys}},
			})
			if err != nil {
				return err
			}

			return e.saveJSON("nuclear", struct {
				Water     []thermal.Result `json:"water"`
				Shielding []decay.Point    `json:"shielding"`
				Decay     []decay.Point    `json:"decay"`
			}{results, intensities, amounts})
		}),
	}
	cmd.Flags().Float64SliceVar(&energies, "energies", []float64{1e6, 1e7, 1e8}, "deposited energies, J")
	cmd.Flags().Float64Var(&mass, "mass", 1.0, "water mass, kg")
	cmd.Flags().Float64Var(&coefficient, "attenuation", 0.02, "linear attenuation coefficient, 1/cm")
	cmd.Flags().Float64Var(&halfLife, "half-life", 2, "half-life for the decay sweep")
	return cmd
}
