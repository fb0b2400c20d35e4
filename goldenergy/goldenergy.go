// Package goldenergy expresses a gold reserve as the energy its market value
// would buy in crude oil.
package goldenergy

import (
	"fmt"
	"math"

	"sciencecalc/decay"
)

const (
	TroyOuncesPerTon    = 32150.746 // troy ounces in one metric ton
	GigajoulesPerBarrel = 6.1       // energy content of a barrel of oil
	USAnnualEnergyPJ    = 95000     // US yearly energy consumption in petajoules
	GigajoulesPerPJ     = 1e6
)

// Input is one conversion scenario.
type Input struct {
	ReservesTons float64 `json:"gold_reserves_tons"`
	GoldPrice    float64 `json:"gold_price_usd_per_ozt"`
	OilPrice     float64 `json:"oil_price_usd_per_barrel"`
}

// Result is every stage of the conversion chain.
type Result struct {
	Input

	TroyOunces  float64 `json:"troy_ounces"`
	GoldValue   float64 `json:"gold_value_usd"`
	OilBarrels  float64 `json:"oil_barrels"`
	EnergyGJ    float64 `json:"energy_gj"`
	EnergyPJ    float64 `json:"energy_pj"`
	YearsOfUS   float64 `json:"years_of_us_energy"`
	MonthsOfUS  float64 `json:"months_of_us_energy"`
	DailyEnergy float64 `json:"daily_energy_pj"`
}

func TonsToTroyOunces(tons float64) float64 { return tons * TroyOuncesPerTon }

func GoldValue(ounces, pricePerOunce float64) float64 { return ounces * pricePerOunce }

func OilBarrels(usd, pricePerBarrel float64) float64 { return usd / pricePerBarrel }

func BarrelsToGJ(barrels float64) float64 { return barrels * GigajoulesPerBarrel }

func GJToPJ(gj float64) float64 { return gj / GigajoulesPerPJ }

// YearsOfUSEnergy is how many years of US consumption pj petajoules cover.
func YearsOfUSEnergy(pj float64) float64 { return pj / USAnnualEnergyPJ }

func valid(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Convert runs the whole chain.
func Convert(in Input) (Result, error) {
	if !(in.ReservesTons >= 0) || math.IsInf(in.ReservesTons, 1) {
		return Result{}, fmt.Errorf("%w: gold reserves must be non-negative, got %v t", decay.ErrInvalidParameter, in.ReservesTons)
	}
	if !valid(in.GoldPrice) {
		return Result{}, fmt.Errorf("%w: gold price must be positive, got %v", decay.ErrInvalidParameter, in.GoldPrice)
	}
	if !valid(in.OilPrice) {
		return Result{}, fmt.Errorf("%w: oil price must be positive, got %v", decay.ErrInvalidParameter, in.OilPrice)
	}

	r := Result{Input: in}
	r.TroyOunces = TonsToTroyOunces(in.ReservesTons)
	r.GoldValue = GoldValue(r.TroyOunces, in.GoldPrice)
	r.OilBarrels = OilBarrels(r.GoldValue, in.OilPrice)
	r.EnergyGJ = BarrelsToGJ(r.OilBarrels)
	r.EnergyPJ = GJToPJ(r.EnergyGJ)
	r.YearsOfUS = YearsOfUSEnergy(r.EnergyPJ)
	r.MonthsOfUS = r.YearsOfUS * 12
	r.DailyEnergy = r.EnergyPJ / 365
	return r, nil
}
