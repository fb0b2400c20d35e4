package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sciencecalc/decay"
	"sciencecalc/demographic"
)

// parseShares reads "group=share" pairs, keeping their order.
func parseShares(pairs []string) ([]demographic.Share, error) {
	shares := make([]demographic.Share, 0, len(pairs))
	for _, pair := range pairs {
		group, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: age share %q is not group=share", decay.ErrInvalidParameter, pair)
		}
		share, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: age share %q: %v", decay.ErrInvalidParameter, pair, err)
		}
		shares = append(shares, demographic.Share{Group: strings.TrimSpace(group), Share: share})
	}
	return shares, nil
}

func populationCmd(e *env) *cobra.Command {
	sample := demographic.Sample()
	p := sample
	var ages []string
	for _, s := range sample.AgeDistribution {
		ages = append(ages, fmt.Sprintf("%s=%v", s.Group, s.Share))
	}

	cmd := &cobra.Command{
		Use:   "population",
		Short: "Age-banded population survival",
		RunE: e.run("population", func(cmd *cobra.Command) error {
			shares, err := parseShares(ages)
			if err != nil {
				return err
			}
			p.AgeDistribution = shares

			m, err := demographic.Calculate(p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), demographic.Report(p, m))

			initial, final := demographic.Pyramid(m)
			if err := e.saveChart("population-initial", initial); err != nil {
				return err
			}
			if err := e.saveChart("population-final", final); err != nil {
				return err
			}
			return e.saveJSON("population", struct {
				Params  demographic.Params  `json:"params"`
				Metrics demographic.Metrics `json:"metrics"`
			}{p, m})
		}),
	}
	f := cmd.Flags()
	f.Float64Var(&p.BaseMortalityRate, "mortality", sample.BaseMortalityRate, "base mortality rate, 0-1")
	f.Float64Var(&p.LifeExpectancy, "life-expectancy", sample.LifeExpectancy, "life expectancy, years")
	f.IntVar(&p.PopulationSize, "size", sample.PopulationSize, "population size")
	f.Float64Var(&p.HealthcareAccess, "healthcare", sample.HealthcareAccess, "healthcare access, 0-1")
	f.Float64Var(&p.InfrastructureQuality, "infrastructure", sample.InfrastructureQuality, "infrastructure quality, 0-1")
	f.StringSliceVar(&ages, "ages", ages, "age distribution as group=share pairs")
	return cmd
}
