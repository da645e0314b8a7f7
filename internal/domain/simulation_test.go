package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectionInput_Runnable(t *testing.T) {
	tests := []struct {
		name string
		in   ProjectionInput
		want bool
	}{
		{"complete", ProjectionInput{Capital: 1000, MonthlyContribution: 100, Years: 10, AnnualRatePercent: 5}, true},
		{"no contribution nor rate", ProjectionInput{Capital: 1000, Years: 1}, true},
		{"negative capital", ProjectionInput{Capital: -500, Years: 1}, true},
		{"zero capital", ProjectionInput{Years: 10, AnnualRatePercent: 5}, false},
		{"NaN capital", ProjectionInput{Capital: math.NaN(), Years: 10}, false},
		{"zero years", ProjectionInput{Capital: 1000}, false},
		{"negative years", ProjectionInput{Capital: 1000, Years: -2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Runnable())
		})
	}
}

func TestScenario_LabelAndPrefix(t *testing.T) {
	assert.Equal(t, []Scenario{ScenarioPessimistic, ScenarioMedian, ScenarioOptimistic}, Scenarios)
	assert.Equal(t, "Scénario pessimiste", ScenarioPessimistic.Label())
	assert.Equal(t, "Scénario médian", ScenarioMedian.Label())
	assert.Equal(t, "Scénario optimiste", ScenarioOptimistic.Label())
	assert.Equal(t, "pess", ScenarioPessimistic.Prefix())
	assert.Equal(t, "med", ScenarioMedian.Prefix())
	assert.Equal(t, "opt", ScenarioOptimistic.Prefix())
	assert.Equal(t, "other", Scenario("other").Label())
}

func TestSimulation_Figures(t *testing.T) {
	sim := &Simulation{Results: []ScenarioResult{
		{Scenario: ScenarioMedian, RatePercent: 12, Projection: ProjectionResult{TotalInvested: 2200, FinalValue: 2395.5}},
		{Scenario: ScenarioOptimistic, RatePercent: 14, Projection: ProjectionResult{TotalInvested: 2200, FinalValue: math.Inf(1)}},
	}}

	figures := sim.Figures()
	assert.Len(t, figures, 2)
	assert.Equal(t, "Scénario médian", figures[0].Label)
	assert.Equal(t, "195.5", figures[0].Performance.String())
	assert.True(t, figures[1].Value.IsZero(), "non-finite values have no decimal form")

	r, ok := sim.Result(ScenarioOptimistic)
	assert.True(t, ok)
	assert.Equal(t, 14.0, r.RatePercent)
	_, ok = sim.Result(ScenarioPessimistic)
	assert.False(t, ok)
}

func TestAsset_IsUp(t *testing.T) {
	assert.True(t, Asset{Change: 0}.IsUp())
	assert.True(t, Asset{Change: 0.32}.IsUp())
	assert.False(t, Asset{Change: -0.27}.IsUp())
}

func TestProjectionResult_Performance(t *testing.T) {
	assert.Equal(t, 195.0, ProjectionResult{TotalInvested: 2200, FinalValue: 2395}.Performance())
	assert.Equal(t, 24, ProjectionInput{Years: 2}.Months())
}
