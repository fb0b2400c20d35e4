package goldenergy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sciencecalc/decay"
)

func TestConvert_USReserves(t *testing.T) {
	r, err := Convert(Input{ReservesTons: 8133.5, GoldPrice: 2400, OilPrice: 80})
	require.NoError(t, err)

	assert.InEpsilon(t, 261498092.591, r.TroyOunces, 1e-12)
	assert.InEpsilon(t, 627595422218.4, r.GoldValue, 1e-12)
	assert.InEpsilon(t, 7844942777.73, r.OilBarrels, 1e-12)
	assert.InEpsilon(t, 47854150944.153, r.EnergyGJ, 1e-12)
	assert.InEpsilon(t, 47854.150944153, r.EnergyPJ, 1e-12)
	assert.InDelta(t, 0.503728, r.YearsOfUS, 1e-6)
	assert.InDelta(t, 6.044735, r.MonthsOfUS, 1e-6)
	assert.InDelta(t, 131.107263, r.DailyEnergy, 1e-6)
}

func TestConvert_AlternativePrices(t *testing.T) {
	r, err := Convert(Input{ReservesTons: 8133.5, GoldPrice: 2500, OilPrice: 70})
	require.NoError(t, err)
	assert.InDelta(t, 56969.227314, r.EnergyPJ, 1e-6)
	assert.InDelta(t, 0.599676, r.YearsOfUS, 1e-6)
}

func TestConvert_ZeroReserves(t *testing.T) {
	r, err := Convert(Input{ReservesTons: 0, GoldPrice: 2400, OilPrice: 80})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.EnergyPJ)
}

func TestConvert_Invalid(t *testing.T) {
	tests := []Input{
		{ReservesTons: -1, GoldPrice: 2400, OilPrice: 80},
		{ReservesTons: 1, GoldPrice: 0, OilPrice: 80},
		{ReservesTons: 1, GoldPrice: 2400, OilPrice: 0},
		{ReservesTons: 1, GoldPrice: 2400, OilPrice: -70},
	}
	for _, in := range tests {
		_, err := Convert(in)
		assert.ErrorIs(t, err, decay.ErrInvalidParameter, "%+v", in)
	}
}

func TestUnitSteps(t *testing.T) {
	assert.Equal(t, 32150.746, TonsToTroyOunces(1))
	assert.Equal(t, 2400.0, GoldValue(1, 2400))
	assert.Equal(t, 2.0, OilBarrels(160, 80))
	assert.Equal(t, 6.1, BarrelsToGJ(1))
	assert.Equal(t, 1.0, GJToPJ(1e6))
	assert.Equal(t, 1.0, YearsOfUSEnergy(95000))
}

func TestReport(t *testing.T) {
	r, err := Convert(Input{ReservesTons: 8133.5, GoldPrice: 2400, OilPrice: 80})
	require.NoError(t, err)

	report := Report(r)
	assert.Contains(t, report, "Gold Reserves: 8,133.50 metric tons")
	assert.Contains(t, report, "Gold Price: $2,400.00 per troy ounce")
	assert.Contains(t, report, "Oil Price: $80.00 per barrel")
	assert.Contains(t, report, "Energy Generation Potential: 47,854.15 Petajoules")
	assert.Contains(t, report, "Years of US Energy Consumption: 0.50")
	assert.Contains(t, report, "Monthly Energy Coverage: 6.0 months")
	assert.Contains(t, report, "Daily Energy Equivalent: 131.11 Petajoules/day")
}
