package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sciencecalc/worldline"
)

func worldlineCmd(e *env) *cobra.Command {
	var (
		end    float64
		points int
	)
	cmd := &cobra.Command{
		Use:   "worldline",
		Short: "Observer and computer worldlines in Malament-Hogarth spacetime",
		RunE: e.run("worldline", func(cmd *cobra.Command) error {
			res, err := worldline.Sample(end, points)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), res.Report())

			if err := e.saveChart("worldline", res.Chart()); err != nil {
				return err
			}
			return e.saveJSON("worldline", res)
		}),
	}
	cmd.Flags().Float64Var(&end, "end", 80, "last proper time sampled")
	cmd.Flags().IntVar(&points, "points", 1000, "samples along each worldline")
	return cmd
}
