package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sciencecalc/decay"
	"sciencecalc/planck"
)

func planckCmd(e *env) *cobra.Command {
	values := []string{"length=1", "time=1", "mass=1", "temperature=1"}
	cmd := &cobra.Command{
		Use:   "planck",
		Short: "Express SI values in Planck units",
		RunE: e.run("planck", func(cmd *cobra.Command) error {
			var qs []planck.Quantity
			for _, v := range values {
				name, raw, ok := strings.Cut(v, "=")
				if !ok {
					return fmt.Errorf("%w: %q is not quantity=value", decay.ErrInvalidParameter, v)
				}
				si, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
				if err != nil {
					return fmt.Errorf("%w: %q: %v", decay.ErrInvalidParameter, v, err)
				}
				qs = append(qs, planck.Quantity{Name: strings.TrimSpace(name), Value: si})
			}
			cs, err := planck.Convert(qs)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), planck.Report(cs))
			return e.saveJSON("planck", cs)
		}),
	}
	cmd.Flags().StringSliceVar(&values, "value", values, "SI values as quantity=value (length, time, mass, temperature)")
	return cmd
}
