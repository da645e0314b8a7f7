package calculation

import (
	"github.com/finlab/finance-lab/internal/domain"
)

// ScenarioSpreadPoints is the fixed distance, in percentage points, between the median
// rate and the pessimistic/optimistic rates.
const ScenarioSpreadPoints = 2.0

// monthsPerYear is the compounding frequency
const monthsPerYear = 12

// Project computes a monthly-compounded trajectory.
//
// The nominal annual rate is converted to a monthly rate (annualRatePercent / 100 / 12).
// Month 0 is sampled before any growth; every following month grows the value by the
// monthly rate and then adds the contribution. The result holds years*12+1 points.
func Project(capital, monthlyContribution float64, years int, annualRatePercent float64) domain.ProjectionResult {
	monthlyRate := annualRatePercent / 100 / monthsPerYear
	months := years * monthsPerYear

	value := capital
	invested := capital
	points := make([]domain.Point, 0, max(months, 0)+1)
	points = append(points, domain.Point{TimeYears: 0, Value: value})

	for m := 1; m <= months; m++ {
		value = value*(1+monthlyRate) + monthlyContribution
		invested += monthlyContribution
		points = append(points, domain.Point{TimeYears: float64(m) / monthsPerYear, Value: value})
	}

	return domain.ProjectionResult{
		TotalInvested: invested,
		FinalValue:    value,
		Points:        points,
	}
}

// RateFor returns the annual rate used by a scenario given the median rate
func RateFor(scenario domain.Scenario, medianRatePercent float64) float64 {
	switch scenario {
	case domain.ScenarioPessimistic:
		return medianRatePercent - ScenarioSpreadPoints
	case domain.ScenarioOptimistic:
		return medianRatePercent + ScenarioSpreadPoints
	default:
		return medianRatePercent
	}
}

// ProjectScenarios runs the projection for every scenario, sharing capital,
// contribution and horizon. Results are in display order (pessimistic, median, optimistic).
func ProjectScenarios(input domain.ProjectionInput) []domain.ScenarioResult {
	results := make([]domain.ScenarioResult, 0, len(domain.Scenarios))
	for _, sc := range domain.Scenarios {
		rate := RateFor(sc, input.AnnualRatePercent)
		results = append(results, domain.ScenarioResult{
			Scenario:    sc,
			RatePercent: rate,
			Projection:  Project(input.Capital, input.MonthlyContribution, input.Years, rate),
		})
	}
	return results
}
