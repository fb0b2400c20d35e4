// Package thermal accounts for energy deposited in water: sensible heating
// up to the boiling point, vaporization on the boiling plateau, then
// heating of superheated steam.
package thermal

import (
	"fmt"
	"math"

	"sciencecalc/decay"
)

// Phase is the state water ends in after absorbing energy.
type Phase string

const (
	Liquid           Phase = "liquid"
	Mixed            Phase = "mixed"
	SuperheatedSteam Phase = "superheated_steam"
)

// Water holds the properties used for the energy balance.
type Water struct {
	SpecificHeat      float64 // kJ/kg·K
	LatentHeat        float64 // kJ/kg, vaporization
	InitialTemp       float64 // °C
	BoilingPoint      float64 // °C
	SteamSpecificHeat float64 // kJ/kg·K
}

// DefaultWater is liquid water at 20 °C and atmospheric pressure.
var DefaultWater = Water{
	SpecificHeat:      4.186,
	LatentHeat:        2260,
	InitialTemp:       20,
	BoilingPoint:      100,
	SteamSpecificHeat: 2.08,
}

// Result of absorbing energy into a mass of water.
type Result struct {
	FinalTemperature float64 `json:"final_temperature_c"`
	Phase            Phase   `json:"phase"`
	// VaporFraction is only meaningful for the Mixed phase.
	VaporFraction  float64 `json:"vapor_fraction,omitempty"`
	EnergyAbsorbed float64 `json:"energy_absorbed_kj"`
}

// Absorb deposits energyJ joules into massKg kilograms of w.
func (w Water) Absorb(energyJ, massKg float64) (Result, error) {
	if !(energyJ >= 0) || math.IsInf(energyJ, 1) {
		return Result{}, fmt.Errorf("%w: energy must be finite and non-negative, got %v J", decay.ErrInvalidParameter, energyJ)
	}
	if !(massKg > 0) || math.IsInf(massKg, 1) {
		return Result{}, fmt.Errorf("%w: mass must be finite and positive, got %v kg", decay.ErrInvalidParameter, massKg)
	}

	energy := energyJ / 1000
	toBoiling := massKg * w.SpecificHeat * (w.BoilingPoint - w.InitialTemp)

	if energy < toBoiling {
		return Result{
			FinalTemperature: w.InitialTemp + energy/(massKg*w.SpecificHeat),
			Phase:            Liquid,
			EnergyAbsorbed:   energy,
		}, nil
	}

	toVaporize := massKg * w.LatentHeat
	remaining := energy - toBoiling

	if remaining >= toVaporize {
		remaining -= toVaporize
		return Result{
			FinalTemperature: w.BoilingPoint + remaining/(massKg*w.SteamSpecificHeat),
			Phase:            SuperheatedSteam,
			EnergyAbsorbed:   energy,
		}, nil
	}

	return Result{
		FinalTemperature: w.BoilingPoint,
		Phase:            Mixed,
		VaporFraction:    remaining / toVaporize,
		EnergyAbsorbed:   energy,
	}, nil
}

// Absorb deposits energy into DefaultWater.
func Absorb(energyJ, massKg float64) (Result, error) {
	return DefaultWater.Absorb(energyJ, massKg)
}
