package output

import (
	"github.com/finlab/finance-lab/internal/domain"
)

// SummaryRow is one scenario's figures ready for display
type SummaryRow struct {
	Scenario    domain.Scenario `json:"scenario"`
	Prefix      string          `json:"prefix"`
	Label       string          `json:"label"`
	Rate        string          `json:"rate"`
	Invested    string          `json:"invested"`
	Value       string          `json:"value"`
	Performance string          `json:"performance"`
}

// Summarize formats invested, final value and performance of every scenario
func Summarize(sim *domain.Simulation) []SummaryRow {
	figures := sim.Figures()
	rows := make([]SummaryRow, 0, len(figures))
	for _, f := range figures {
		rows = append(rows, SummaryRow{
			Scenario:    f.Scenario,
			Prefix:      f.Scenario.Prefix(),
			Label:       f.Label,
			Rate:        FormatPercentage(f.RatePercent),
			Invested:    FormatCurrency(f.Invested),
			Value:       FormatCurrency(f.Value),
			Performance: FormatCurrency(f.Performance),
		})
	}
	return rows
}
