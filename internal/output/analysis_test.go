package output

import (
	"strings"
	"testing"

	"github.com/finlab/finance-lab/internal/calculation"
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_ScenarioA(t *testing.T) {
	rows := Summarize(scenarioA(t))
	want := []SummaryRow{
		{Scenario: domain.ScenarioPessimistic, Prefix: "pess", Label: "Scénario pessimiste", Rate: "3.00 %",
			Invested: "13\u202f000 €", Value: "15\u202f323 €", Performance: "2\u202f323 €"},
		{Scenario: domain.ScenarioMedian, Prefix: "med", Label: "Scénario médian", Rate: "5.00 %",
			Invested: "13\u202f000 €", Value: "17\u202f175 €", Performance: "4\u202f175 €"},
		{Scenario: domain.ScenarioOptimistic, Prefix: "opt", Label: "Scénario optimiste", Rate: "7.00 %",
			Invested: "13\u202f000 €", Value: "19\u202f318 €", Performance: "6\u202f318 €"},
	}
	assert.Equal(t, want, rows)
}

func TestAnalyzeSpread(t *testing.T) {
	s := AnalyzeSpread(scenarioA(t))
	assert.Equal(t, "13000", s.Invested.String())
	assert.InDelta(t, 19318.14-15323.50, s.Range.InexactFloat64(), 0.01)
	assert.InDelta(t, 32.12, s.MedianGainPercent.InexactFloat64(), 0.01)
}

func TestAnalyzeSpread_EmptySimulation(t *testing.T) {
	s := AnalyzeSpread(&domain.Simulation{})
	assert.True(t, s.Range.IsZero())
	assert.True(t, s.MedianGainPercent.IsZero())
}

func TestGenerateAssumptions(t *testing.T) {
	got := GenerateAssumptions(domain.ProjectionInput{Capital: 1000, Years: 10, AnnualRatePercent: 5})
	if assert.Len(t, got, len(DefaultAssumptions)+2) {
		assert.Equal(t, "Taux médian : 5.00 % par an (pessimiste 3.00 %, optimiste 7.00 %)", got[0])
		assert.Equal(t, "Horizon : 10 ans, soit 120 mois", got[1])
	}
}

func TestSummarize_HugeProjectionKeepsSignAndMagnitude(t *testing.T) {
	sim, ok := calculation.NewSimulationEngine().Simulate(domain.ProjectionInput{
		Capital: 1e6, Years: 50, AnnualRatePercent: 100,
	})
	require.True(t, ok)

	rows := Summarize(sim)
	require.Len(t, rows, 3)
	for i, row := range rows {
		final := sim.Results[i].Projection.FinalValue
		require.Greater(t, final, 9.3e18, row.Label)

		digits := strings.TrimSuffix(strings.ReplaceAll(row.Value, "\u202f", ""), " €")
		assert.False(t, strings.HasPrefix(digits, "-"), row.Value)
		got, err := decimal.NewFromString(digits)
		require.NoError(t, err, row.Value)
		assert.InEpsilon(t, final, got.InexactFloat64(), 1e-12, row.Label)
	}
}
