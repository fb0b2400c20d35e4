package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sciencecalc/isotope"
)

func isotopeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isotope",
		Short: "Medical isotope decay",
	}
	cmd.AddCommand(
		isotopeDecayCmd(e),
		isotopeCompareCmd(e),
		isotopeActivityCmd(e),
		isotopeSimulateCmd(e),
		isotopeListCmd(e),
	)
	return cmd
}

func isotopeDecayCmd(e *env) *cobra.Command {
	var (
		name    string
		initial float64
		hours   float64
		points  int
	)
	cmd := &cobra.Command{
		Use:   "decay",
		Short: "Decay curve of one isotope",
		RunE: e.run("isotope_decay", func(cmd *cobra.Command) error {
			curve, err := isotope.DecayCurve(name, initial, hours, points)
			if err != nil {
				return err
			}
			r, err := isotope.Decay(name, initial, hours)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Analyzing %s decay (%s)\n", curve.Isotope.Name(), curve.Isotope.Use)
			fmt.Fprintf(out, "Half-life: %v hours\n", curve.Isotope.HalfLife)
			fmt.Fprintf(out, "Remaining after %v hours: %.4f of %v (%.2f%%)\n", hours, r.Remaining, initial, r.Fraction*100)

			if err := e.saveChart("isotope-decay", curve.Chart()); err != nil {
				return err
			}
			return e.saveJSON("isotope-decay", curve)
		}),
	}
	cmd.Flags().StringVar(&name, "isotope", "Tc-99m", "isotope name")
	cmd.Flags().Float64Var(&initial, "initial", 1000, "initial amount (arbitrary units)")
	cmd.Flags().Float64Var(&hours, "hours", 24, "duration in hours")
	cmd.Flags().IntVar(&points, "points", 1000, "samples along the curve")
	return cmd
}

func isotopeCompareCmd(e *env) *cobra.Command {
	var (
		initial float64
		hours   float64
		points  int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare decay rates of all medical isotopes",
		RunE: e.run("isotope_compare", func(cmd *cobra.Command) error {
			curves, err := isotope.Compare(initial, hours, points)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Comparing decay rates of different medical isotopes")
			fmt.Fprintf(out, "%-8s %-14s %s\n", "Isotope", "Half-life (h)", fmt.Sprintf("Remaining after %vh", hours))
			for _, c := range curves {
				last := c.Points[len(c.Points)-1]
				fmt.Fprintf(out, "%-8s %-14v %.4f\n", c.Isotope.Name(), c.Isotope.HalfLife, last.Y)
			}

			if err := e.saveChart("isotope-compare", isotope.CompareChart(curves)); err != nil {
				return err
			}
			return e.saveJSON("isotope-compare", curves)
		}),
	}
	cmd.Flags().Float64Var(&initial, "initial", 1000, "initial amount (arbitrary units)")
	cmd.Flags().Float64Var(&hours, "hours", 24, "duration in hours")
	cmd.Flags().IntVar(&points, "points", 1000, "samples along each curve")
	return cmd
}

func isotopeActivityCmd(e *env) *cobra.Command {
	var (
		name      string
		fractions []float64
	)
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Time to reach target fractions of initial activity",
		RunE: e.run("isotope_activity", func(cmd *cobra.Command) error {
			report, err := isotope.ActivityReport(name, fractions)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report)

			type level struct {
				Fraction float64 `json:"fraction"`
				Hours    float64 `json:"hours"`
			}
			var levels []level
			for _, f := range fractions {
				h, err := isotope.ActivityTime(name, f)
				if err != nil {
					return err
				}
				levels = append(levels, level{f, h})
			}
			return e.saveJSON("isotope-activity", levels)
		}),
	}
	cmd.Flags().StringVar(&name, "isotope", "Tc-99m", "isotope name")
	cmd.Flags().Float64SliceVar(&fractions, "fractions", isotope.DefaultFractions, "target fractions of initial activity")
	return cmd
}

func isotopeSimulateCmd(e *env) *cobra.Command {
	var (
		name  string
		atoms int
		hours float64
		steps int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Monte Carlo decay compared with the analytic law",
		RunE: e.run("isotope_simulate", func(cmd *cobra.Command) error {
			sim, err := isotope.Simulate(name, atoms, hours, steps, seed)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), isotope.SimulationReport(sim))

			if err := e.saveChart("isotope-simulate", sim.Chart()); err != nil {
				return err
			}
			return e.saveJSON("isotope-simulate", sim)
		}),
	}
	cmd.Flags().StringVar(&name, "isotope", "Tc-99m", "isotope name")
	cmd.Flags().IntVar(&atoms, "atoms", 10000, "number of atoms")
	cmd.Flags().Float64Var(&hours, "hours", 24, "duration in hours")
	cmd.Flags().IntVar(&steps, "steps", 48, "time steps")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func isotopeListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known medical isotopes",
		RunE: e.run("isotope_list", func(cmd *cobra.Command) error {
			report, err := isotope.TableReport()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
			return nil
		}),
	}
}
