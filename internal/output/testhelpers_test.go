package output

import (
	"testing"

	"github.com/finlab/finance-lab/internal/calculation"
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/stretchr/testify/require"
)

// scenarioA is 1000 € capital, 100 € a month over 10 years at 5 %.
func scenarioA(t *testing.T) *domain.Simulation {
	t.Helper()
	sim, ok := calculation.NewSimulationEngine().Simulate(domain.ProjectionInput{
		Capital: 1000, MonthlyContribution: 100, Years: 10, AnnualRatePercent: 5,
	})
	require.True(t, ok)
	return sim
}
