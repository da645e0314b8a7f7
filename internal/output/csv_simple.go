package output

import (
	"bytes"
	"encoding/csv"

	"github.com/finlab/finance-lab/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(sim *domain.Simulation) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "RatePercent", "TotalInvested", "FinalValue", "Performance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, f := range sim.Figures() {
		row := []string{
			string(f.Scenario),
			f.RatePercent.StringFixed(2),
			f.Invested.StringFixed(2),
			f.Value.StringFixed(2),
			f.Performance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
