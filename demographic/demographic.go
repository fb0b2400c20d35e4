// Package demographic estimates how many people in each age group survive a
// period, given a base mortality rate and the quality of healthcare and
// infrastructure.
package demographic

import (
	"fmt"
	"math"

	"sciencecalc/decay"
	"sciencecalc/lookup"
)

// AgeFactors scales the base survival rate per age group.
var AgeFactors = lookup.New("age group",
	lookup.Entry[float64]{Key: "0-14", Value: 0.99},
	lookup.Entry[float64]{Key: "15-24", Value: 0.98},
	lookup.Entry[float64]{Key: "25-54", Value: 0.97},
	lookup.Entry[float64]{Key: "55-64", Value: 0.95},
	lookup.Entry[float64]{Key: "65+", Value: 0.92},
)

// Share is the fraction of the population in one age group.
type Share struct {
	Group string  `json:"group"`
	Share float64 `json:"share"`
}

// Params describes the population being analysed.
type Params struct {
	BaseMortalityRate     float64 `json:"base_mortality_rate"`
	LifeExpectancy        float64 `json:"life_expectancy"`
	PopulationSize        int     `json:"population_size"`
	AgeDistribution       []Share `json:"age_distribution"`
	HealthcareAccess      float64 `json:"healthcare_access"`
	InfrastructureQuality float64 `json:"infrastructure_quality"`
}

// Sample is the example population the calculator ships with.
func Sample() Params {
	return Params{
		BaseMortalityRate: 0.01,
		LifeExpectancy:    75.0,
		PopulationSize:    1000000,
		AgeDistribution: []Share{
			{"0-14", 0.25},
			{"15-24", 0.15},
			{"25-54", 0.35},
			{"55-64", 0.15},
			{"65+", 0.10},
		},
		HealthcareAccess:      0.8,
		InfrastructureQuality: 0.75,
	}
}

func unit(name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("%w: %s must lie in [0, 1], got %v", decay.ErrInvalidParameter, name, v)
	}
	return nil
}

// Validate checks ranges and that every age group is known.
func (p Params) Validate() error {
	if err := unit("base mortality rate", p.BaseMortalityRate); err != nil {
		return err
	}
	if err := unit("healthcare access", p.HealthcareAccess); err != nil {
		return err
	}
	if err := unit("infrastructure quality", p.InfrastructureQuality); err != nil {
		return err
	}
	if p.PopulationSize <= 0 {
		return fmt.Errorf("%w: population size must be positive, got %d", decay.ErrInvalidParameter, p.PopulationSize)
	}
	if len(p.AgeDistribution) == 0 {
		return fmt.Errorf("%w: empty age distribution", decay.ErrInvalidParameter)
	}
	total := 0.0
	seen := make(map[string]bool)
	for _, s := range p.AgeDistribution {
		if _, err := AgeFactors.Resolve(s.Group); err != nil {
			return err
		}
		if seen[s.Group] {
			return fmt.Errorf("%w: age group %q listed twice", decay.ErrInvalidParameter, s.Group)
		}
		seen[s.Group] = true
		if err := unit("share of "+s.Group, s.Share); err != nil {
			return err
		}
		total += s.Share
	}
	if total > 1+1e-9 {
		return fmt.Errorf("%w: age shares sum to %v", decay.ErrInvalidParameter, total)
	}
	return nil
}

// BaseSurvivalRate is 1 - mortality scaled by the age group's factor.
func (p Params) BaseSurvivalRate(group string) (float64, error) {
	factor, err := AgeFactors.Resolve(group)
	if err != nil {
		return 0, err
	}
	return (1 - p.BaseMortalityRate) * factor, nil
}

// AdjustForResources scales a survival rate by the healthcare and
// infrastructure factors, each ranging from 0.95 (none) to 1 (full).
func (p Params) AdjustForResources(rate float64) float64 {
	healthcare := 0.95 + 0.05*p.HealthcareAccess
	infrastructure := 0.95 + 0.05*p.InfrastructureQuality
	return rate * healthcare * infrastructure
}

// GroupMetrics are the results for one age group, or for the total.
type GroupMetrics struct {
	Group     string  `json:"group"`
	Initial   int     `json:"initial_population"`
	Survival  float64 `json:"survival_rate"`
	Surviving int     `json:"surviving_population"`
}

// Metrics holds per-group results in input order plus the total.
type Metrics struct {
	Groups []GroupMetrics `json:"groups"`
	Total  GroupMetrics   `json:"total"`
}

// Calculate runs the survival model over every age group.
func Calculate(p Params) (Metrics, error) {
	if err := p.Validate(); err != nil {
		return Metrics{}, err
	}

	var m Metrics
	surviving := 0
	for _, s := range p.AgeDistribution {
		initial := int(math.Floor(float64(p.PopulationSize) * s.Share))
		base, err := p.BaseSurvivalRate(s.Group)
		if err != nil {
			return Metrics{}, err
		}
		rate := p.AdjustForResources(base)
		survived := int(math.Floor(float64(initial) * rate))
		surviving += survived

		m.Groups = append(m.Groups, GroupMetrics{
			Group:     s.Group,
			Initial:   initial,
			Survival:  rate,
			Surviving: survived,
		})
	}
	m.Total = GroupMetrics{
		Group:     "total",
		Initial:   p.PopulationSize,
		Survival:  float64(surviving) / float64(p.PopulationSize),
		Surviving: surviving,
	}
	return m, nil
}
