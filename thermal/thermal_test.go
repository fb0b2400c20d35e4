package thermal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sciencecalc/decay"
)

func TestAbsorb(t *testing.T) {
	tests := []struct {
		name     string
		energyJ  float64
		phase    Phase
		temp     float64
		vapor    float64
		absorbed float64
	}{
		{"liquid", 1e5, Liquid, 43.8892, 0, 100},
		{"no energy", 0, Liquid, 20, 0, 0},
		{"mixed", 1e6, Mixed, 100, 0.294301, 1000},
		{"steam", 1e7, SuperheatedSteam, 3660.1538, 0, 10000},
		{"hot steam", 1e8, SuperheatedSteam, 46929.3846, 0, 100000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Absorb(tt.energyJ, 1.0)
			require.NoError(t, err)
			assert.Equal(t, tt.phase, r.Phase)
			assert.InDelta(t, tt.temp, r.FinalTemperature, 1e-3)
			assert.InDelta(t, tt.vapor, r.VaporFraction, 1e-6)
			assert.InDelta(t, tt.absorbed, r.EnergyAbsorbed, 1e-9)
		})
	}
}

func TestAbsorb_Boundaries(t *testing.T) {
	w := Water{SpecificHeat: 4, LatentHeat: 2000, InitialTemp: 20, BoilingPoint: 100, SteamSpecificHeat: 2}

	// exactly the energy needed to reach boiling: plateau with no vapor
	r, err := w.Absorb(320e3, 1)
	require.NoError(t, err)
	assert.Equal(t, Mixed, r.Phase)
	assert.Equal(t, 100.0, r.FinalTemperature)
	assert.Equal(t, 0.0, r.VaporFraction)

	// boiling plus full vaporization: steam at exactly 100 °C
	r, err = w.Absorb(2320e3, 1)
	require.NoError(t, err)
	assert.Equal(t, SuperheatedSteam, r.Phase)
	assert.Equal(t, 100.0, r.FinalTemperature)

	r, err = w.Absorb(2320e3+2e3, 1)
	require.NoError(t, err)
	assert.Equal(t, 101.0, r.FinalTemperature)
}

func TestAbsorb_ScalesWithMass(t *testing.T) {
	one, err := Absorb(1e6, 1)
	require.NoError(t, err)
	ten, err := Absorb(1e7, 10)
	require.NoError(t, err)
	assert.Equal(t, one.Phase, ten.Phase)
	assert.InDelta(t, one.VaporFraction, ten.VaporFraction, 1e-12)
}

func TestAbsorb_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		energy, mass float64
	}{
		{"negative energy", -1, 1},
		{"zero mass", 1e6, 0},
		{"infinite energy", math.Inf(1), 1},
		{"infinite mass", 1e6, math.Inf(1)},
		{"NaN energy", math.NaN(), 1},
		{"NaN mass", 1e6, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Absorb(tt.energy, tt.mass)
			assert.ErrorIs(t, err, decay.ErrInvalidParameter)
		})
	}
}

func TestReport(t *testing.T) {
	r, err := Absorb(1e6, 1)
	require.NoError(t, err)
	report := Report(1e6, r)
	assert.Contains(t, report, "Energy Input: 1.00 MJ")
	assert.Contains(t, report, "Final Temperature: 100.00°C")
	assert.Contains(t, report, "Phase: mixed")
	assert.Contains(t, report, "Vapor Fraction: 29.43%")

	r, err = Absorb(1e8, 1)
	require.NoError(t, err)
	assert.NotContains(t, Report(1e8, r), "Vapor Fraction")
}
