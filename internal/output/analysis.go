package output

import (
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/shopspring/decimal"
)

// Spread summarises how far apart the scenarios end up.
type Spread struct {
	Invested          decimal.Decimal
	PessimisticValue  decimal.Decimal
	MedianValue       decimal.Decimal
	OptimisticValue   decimal.Decimal
	Range             decimal.Decimal // optimistic minus pessimistic final value
	MedianGainPercent decimal.Decimal // median performance over invested, in percent
}

// AnalyzeSpread compares the final values of the scenarios.
// Extracted from the console and html formatters for testability.
func AnalyzeSpread(sim *domain.Simulation) Spread {
	var s Spread
	for _, f := range sim.Figures() {
		s.Invested = f.Invested
		switch f.Scenario {
		case domain.ScenarioPessimistic:
			s.PessimisticValue = f.Value
		case domain.ScenarioMedian:
			s.MedianValue = f.Value
		case domain.ScenarioOptimistic:
			s.OptimisticValue = f.Value
		}
	}
	s.Range = s.OptimisticValue.Sub(s.PessimisticValue)
	if !s.Invested.IsZero() {
		s.MedianGainPercent = s.MedianValue.Sub(s.Invested).Div(s.Invested).Mul(decimalHundred)
	}
	return s
}
