package isotope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sciencecalc/decay"
	"sciencecalc/lookup"
)

func TestSimulate_TracksAnalyticCurve(t *testing.T) {
	const atoms = 20000
	sim, err := Simulate("Tc-99m", atoms, 24, 48, 1)
	require.NoError(t, err)

	require.Len(t, sim.Times, 49)
	require.Len(t, sim.Survivors, 49)
	require.Len(t, sim.Expected, 49)

	assert.Equal(t, atoms, sim.Survivors[0])
	assert.Equal(t, float64(atoms), sim.Expected[0])
	assert.InDelta(t, atoms/16.0, sim.Expected[48], 1e-6)

	for i := 1; i < len(sim.Survivors); i++ {
		assert.LessOrEqual(t, sim.Survivors[i], sim.Survivors[i-1])
	}
	// binomial spread at this size is well under 1% of the atom count
	for i, n := range sim.Survivors {
		assert.InDelta(t, sim.Expected[i], float64(n), atoms*0.03, "step %d", i)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	a, err := Simulate("F-18", 2000, 6, 12, 42)
	require.NoError(t, err)
	b, err := Simulate("F-18", 2000, 6, 12, 42)
	require.NoError(t, err)
	assert.Equal(t, a.Survivors, b.Survivors)
}

func TestSimulate_Invalid(t *testing.T) {
	_, err := Simulate("Tc-99m", 0, 24, 10, 1)
	assert.ErrorIs(t, err, decay.ErrInvalidParameter)
	_, err = Simulate("Tc-99m", 10, 0, 10, 1)
	assert.ErrorIs(t, err, decay.ErrInvalidParameter)
	_, err = Simulate("Tc-99m", 10, 24, 0, 1)
	assert.ErrorIs(t, err, decay.ErrInvalidParameter)
	_, err = Simulate("Pu-239", 10, 24, 10, 1)
	assert.ErrorIs(t, err, lookup.ErrUnknownKey)
}

func TestDecayChooser_Extremes(t *testing.T) {
	always, err := decayChooser(1)
	require.NoError(t, err)
	never, err := decayChooser(0)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.True(t, always.Pick().(bool))
		assert.False(t, never.Pick().(bool))
	}
}

func TestSimulationReport(t *testing.T) {
	sim, err := Simulate("Tc-99m", 1000, 12, 4, 7)
	require.NoError(t, err)

	report := SimulationReport(sim)
	assert.Contains(t, report, "Monte Carlo decay of Tc-99m")
	assert.Contains(t, report, "Atoms: 1,000, steps: 4")

	line := sim.Chart()
	assert.Len(t, line.Series, 2)
}
