package output

import (
	"encoding/json"

	"github.com/finlab/finance-lab/internal/chart"
	"github.com/finlab/finance-lab/internal/domain"
)

// JSONReport is the document produced by the json formatter and the simulation API
type JSONReport struct {
	Input       domain.ProjectionInput   `json:"input"`
	Figures     []domain.ScenarioFigures `json:"figures"`
	Summary     []SummaryRow             `json:"summary"`
	Results     []domain.ScenarioResult  `json:"results"`
	Chart       chart.Config             `json:"chart"`
	Assumptions []string                 `json:"assumptions"`
}

// NewJSONReport assembles the report of a simulation
func NewJSONReport(sim *domain.Simulation) JSONReport {
	return JSONReport{
		Input:       sim.Input,
		Figures:     sim.Figures(),
		Summary:     Summarize(sim),
		Results:     sim.Results,
		Chart:       chart.Projection(sim),
		Assumptions: GenerateAssumptions(sim.Input),
	}
}

// JSONFormatter serializes the simulation as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(sim *domain.Simulation) ([]byte, error) {
	return json.MarshalIndent(NewJSONReport(sim), "", "  ")
}
