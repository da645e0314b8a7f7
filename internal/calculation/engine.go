package calculation

import (
	"github.com/finlab/finance-lab/internal/domain"
)

// SimulationEngine runs a form submission through the projection engine
type SimulationEngine struct {
	Logger Logger
}

// NewSimulationEngine creates a new simulation engine
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// Simulate computes the three scenario projections for one submission.
//
// When capital or horizon is missing the submission is skipped silently: no simulation
// is returned and ok is false. This is not an error.
func (se *SimulationEngine) Simulate(input domain.ProjectionInput) (sim *domain.Simulation, ok bool) {
	if !input.Runnable() {
		se.Logger.Debugf("simulation skipped: capital=%v years=%d", input.Capital, input.Years)
		return nil, false
	}

	sim = &domain.Simulation{
		Input:   input,
		Results: ProjectScenarios(input),
	}
	se.Logger.Debugf("simulation computed: years=%d median_rate=%v points=%d",
		input.Years, input.AnnualRatePercent, input.Months()+1)
	return sim, true
}
