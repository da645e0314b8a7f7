package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// ProjectionInput holds the four parameters submitted together from the simulation form
type ProjectionInput struct {
	Capital             float64 `yaml:"capital" json:"capital"`
	MonthlyContribution float64 `yaml:"monthly" json:"monthly"`
	Years               int     `yaml:"years" json:"years"`
	AnnualRatePercent   float64 `yaml:"rate" json:"rate"`
}

// Runnable reports whether the required fields are present. Capital and horizon are
// the only required values; everything else flows through the arithmetic unchecked.
func (in ProjectionInput) Runnable() bool {
	if in.Capital == 0 || math.IsNaN(in.Capital) {
		return false
	}
	return in.Years > 0
}

// Months returns the number of monthly steps covered by the horizon
func (in ProjectionInput) Months() int {
	return in.Years * 12
}

// Point is one monthly sample of a projection
type Point struct {
	TimeYears float64 `json:"t"`
	Value     float64 `json:"v"`
}

// ProjectionResult represents a monthly-stepped trajectory for one rate
type ProjectionResult struct {
	TotalInvested float64 `json:"total_invested"`
	FinalValue    float64 `json:"final_value"`
	Points        []Point `json:"points"`
}

// Performance returns the gain (or loss) over the amount invested
func (r ProjectionResult) Performance() float64 {
	return r.FinalValue - r.TotalInvested
}

// Scenario names a fixed annual-rate offset applied to the user supplied median rate
type Scenario string

const (
	ScenarioPessimistic Scenario = "pessimistic"
	ScenarioMedian      Scenario = "median"
	ScenarioOptimistic  Scenario = "optimistic"
)

// Scenarios lists every scenario in display order.
var Scenarios = []Scenario{ScenarioPessimistic, ScenarioMedian, ScenarioOptimistic}

// Label returns the display label used by the legend and the reports
func (s Scenario) Label() string {
	switch s {
	case ScenarioPessimistic:
		return "Scénario pessimiste"
	case ScenarioMedian:
		return "Scénario médian"
	case ScenarioOptimistic:
		return "Scénario optimiste"
	}
	return string(s)
}

// Prefix returns the short identifier used for the result cells of the page (pess-invested, ...)
func (s Scenario) Prefix() string {
	switch s {
	case ScenarioPessimistic:
		return "pess"
	case ScenarioMedian:
		return "med"
	case ScenarioOptimistic:
		return "opt"
	}
	return string(s)
}

// ScenarioResult pairs a projection with the scenario and effective rate that produced it
type ScenarioResult struct {
	Scenario    Scenario         `json:"scenario"`
	RatePercent float64          `json:"rate_percent"`
	Projection  ProjectionResult `json:"projection"`
}

// Simulation is the outcome of one form submission: three projections sharing a time axis
type Simulation struct {
	Input   ProjectionInput  `json:"input"`
	Results []ScenarioResult `json:"results"`
}

// Result returns the projection for a scenario
func (s *Simulation) Result(sc Scenario) (ScenarioResult, bool) {
	for _, r := range s.Results {
		if r.Scenario == sc {
			return r, true
		}
	}
	return ScenarioResult{}, false
}

// ScenarioFigures holds the three summary figures displayed per scenario
type ScenarioFigures struct {
	Scenario    Scenario        `json:"scenario"`
	Label       string          `json:"label"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	Invested    decimal.Decimal `json:"invested"`
	Value       decimal.Decimal `json:"value"`
	Performance decimal.Decimal `json:"performance"`
}

// Figures derives the summary figures of every scenario in display order
func (s *Simulation) Figures() []ScenarioFigures {
	figures := make([]ScenarioFigures, 0, len(s.Results))
	for _, r := range s.Results {
		invested := finiteDecimal(r.Projection.TotalInvested)
		value := finiteDecimal(r.Projection.FinalValue)
		figures = append(figures, ScenarioFigures{
			Scenario:    r.Scenario,
			Label:       r.Scenario.Label(),
			RatePercent: finiteDecimal(r.RatePercent),
			Invested:    invested,
			Value:       value,
			Performance: value.Sub(invested),
		})
	}
	return figures
}

// finiteDecimal converts a float to a decimal; NaN and infinities have no decimal form and map to zero.
func finiteDecimal(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
