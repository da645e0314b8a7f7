package output

import (
	"bytes"
	"encoding/csv"

	"github.com/finlab/finance-lab/internal/domain"
)

// CSVDetailedExporter provides the monthly trajectory, one column per scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(sim *domain.Simulation) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "TimeYears"}
	for _, r := range sim.Results {
		header = append(header, string(r.Scenario))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if len(sim.Results) == 0 {
		w.Flush()
		return buf.Bytes(), w.Error()
	}
	// scenarios share the same time axis
	for m, p := range sim.Results[0].Projection.Points {
		row := []string{intToString(m), floatToString(p.TimeYears)}
		for _, r := range sim.Results {
			row = append(row, floatToString(r.Projection.Points[m].Value))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
