package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sciencecalc/shielding"
)

func shieldCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shield",
		Short: "Radiation shielding",
	}
	cmd.AddCommand(shieldCompareCmd(e), shieldAttenuateCmd(e))
	return cmd
}

func shieldCompareCmd(e *env) *cobra.Command {
	var (
		initial      float64
		target       float64
		maxThickness float64
		points       int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Required thickness, weight and cost per material",
		RunE: e.run("shield_compare", func(cmd *cobra.Command) error {
			options, err := shielding.Compare(initial, target)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), shielding.Report(initial, target, options))

			if e.cfg.Charts {
				curves, err := shielding.Curves(initial, maxThickness, points)
				if err != nil {
					return err
				}
				if err := e.saveChart("shield-attenuation", shielding.Chart(curves)); err != nil {
					return err
				}
			}
			return e.saveJSON("shield-compare", options)
		}),
	}
	cmd.Flags().Float64Var(&initial, "initial", 1000, "initial intensity (arbitrary units)")
	cmd.Flags().Float64Var(&target, "target", 1, "target intensity")
	cmd.Flags().Float64Var(&maxThickness, "max-thickness", 100, "largest thickness plotted, cm")
	cmd.Flags().IntVar(&points, "points", 1000, "samples along each curve")
	return cmd
}

func shieldAttenuateCmd(e *env) *cobra.Command {
	var (
		material  string
		initial   float64
		thickness float64
	)
	cmd := &cobra.Command{
		Use:   "attenuate",
		Short: "Intensity after a given thickness of one material",
		RunE: e.run("shield_attenuate", func(cmd *cobra.Command) error {
			m, err := shielding.Materials.Resolve(material)
			if err != nil {
				return err
			}
			final, err := shielding.Attenuate(initial, material, thickness)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Material: %s (half-value thickness %.3f cm)\n", m.Name, m.HalfValue())
			fmt.Fprintf(out, "Intensity after %v cm: %.6g of %v\n", thickness, final, initial)

			return e.saveJSON("shield-attenuate", struct {
				Material  shielding.Material `json:"material"`
				Thickness float64            `json:"thickness_cm"`
				Initial   float64            `json:"initial_intensity"`
				Final     float64            `json:"final_intensity"`
			}{m, thickness, initial, final})
		}),
	}
	cmd.Flags().StringVar(&material, "material", "lead", "shielding material")
	cmd.Flags().Float64Var(&initial, "initial", 1000, "initial intensity (arbitrary units)")
	cmd.Flags().Float64Var(&thickness, "thickness", 5, "shield thickness, cm")
	return cmd
}
