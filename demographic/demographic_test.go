package demographic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sciencecalc/decay"
	"sciencecalc/lookup"
)

func TestCalculate_Sample(t *testing.T) {
	m, err := Calculate(Sample())
	require.NoError(t, err)
	require.Len(t, m.Groups, 5)

	want := []GroupMetrics{
		{"0-14", 250000, 0.95817026, 239542},
		{"15-24", 150000, 0.94849177, 142273},
		{"25-54", 350000, 0.93881329, 328584},
		{"55-64", 150000, 0.91945631, 137918},
		{"65+", 100000, 0.89042085, 89042},
	}
	for i, w := range want {
		g := m.Groups[i]
		assert.Equal(t, w.Group, g.Group)
		assert.Equal(t, w.Initial, g.Initial, w.Group)
		assert.InDelta(t, w.Survival, g.Survival, 1e-8, w.Group)
		assert.InDelta(t, w.Surviving, g.Surviving, 1, w.Group)
	}

	assert.Equal(t, "total", m.Total.Group)
	assert.Equal(t, 1000000, m.Total.Initial)
	assert.InDelta(t, 937359, m.Total.Surviving, 5)
	assert.InDelta(t, 0.937359, m.Total.Survival, 5e-6)
}

func TestBaseSurvivalRate_UnknownGroup(t *testing.T) {
	p := Sample()
	_, err := p.BaseSurvivalRate("75+")
	assert.ErrorIs(t, err, lookup.ErrUnknownKey)

	p.AgeDistribution = append(p.AgeDistribution[:4], Share{"65-plus", 0.10})
	_, err = Calculate(p)
	assert.ErrorIs(t, err, lookup.ErrUnknownKey)
}

func TestAdjustForResources(t *testing.T) {
	p := Sample()
	p.HealthcareAccess, p.InfrastructureQuality = 1, 1
	assert.Equal(t, 0.9, p.AdjustForResources(0.9))

	p.HealthcareAccess, p.InfrastructureQuality = 0, 0
	assert.InDelta(t, 0.9*0.95*0.95, p.AdjustForResources(0.9), 1e-12)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"mortality above one", func(p *Params) { p.BaseMortalityRate = 1.2 }},
		{"negative healthcare", func(p *Params) { p.HealthcareAccess = -0.1 }},
		{"infrastructure above one", func(p *Params) { p.InfrastructureQuality = 2 }},
		{"zero population", func(p *Params) { p.PopulationSize = 0 }},
		{"empty distribution", func(p *Params) { p.AgeDistribution = nil }},
		{"shares above one", func(p *Params) { p.AgeDistribution[0].Share = 0.9 }},
		{"duplicate group", func(p *Params) { p.AgeDistribution[1].Group = "0-14" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Sample()
			tt.mutate(&p)
			_, err := Calculate(p)
			assert.ErrorIs(t, err, decay.ErrInvalidParameter)
		})
	}
}

func TestReport(t *testing.T) {
	p := Sample()
	m, err := Calculate(p)
	require.NoError(t, err)

	report := Report(p, m)
	assert.Contains(t, report, "Base Mortality Rate: 1.00%")
	assert.Contains(t, report, "Population Size: 1,000,000")
	assert.Contains(t, report, "Healthcare Access Level: 80.00%")
	assert.Contains(t, report, "Infrastructure Quality: 75.00%")
	assert.Contains(t, report, "\n25-54:\n  Initial Population: 350,000\n")
	assert.Contains(t, report, "Total Initial Population: 1,000,000")
}

func TestPyramid(t *testing.T) {
	m, err := Calculate(Sample())
	require.NoError(t, err)

	initial, final := Pyramid(m)
	assert.Equal(t, []string{"0-14", "15-24", "25-54", "55-64", "65+"}, initial.Labels)
	assert.Equal(t, 350000.0, initial.Values[2])
	assert.Equal(t, initial.Max, final.Max)
	assert.InDelta(t, 385000.0, initial.Max, 1e-6)
}
