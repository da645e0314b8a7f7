package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/finlab/finance-lab/internal/domain"
	"github.com/finlab/finance-lab/internal/output"
)

// Simulate runs the three-scenario projection. Missing capital or horizon is not an
// error: the request is answered with 204 and nothing is computed.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	logger := s.Logger.With(zap.String("method", "Simulate"))

	var input domain.ProjectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, logger, http.StatusBadRequest, "invalid request body")
		return
	}

	sim, ok := s.Engine.Simulate(input)
	s.Metrics.Simulation(ok)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, logger, http.StatusOK, output.NewJSONReport(sim))
}
