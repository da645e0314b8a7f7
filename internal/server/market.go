package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/finlab/finance-lab/internal/chart"
	"github.com/finlab/finance-lab/internal/market"
)

type marketDetail struct {
	market.Detail
	Chart chart.Config `json:"chart"`
}

// ListMarkets returns the asset table rows
func (s *Server) ListMarkets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.Logger, http.StatusOK, s.Catalog.Rows())
}

// GetMarket returns one asset with its history chart
func (s *Server) GetMarket(w http.ResponseWriter, r *http.Request) {
	logger := s.Logger.With(zap.String("method", "GetMarket"))
	id := chi.URLParam(r, "id")

	asset, err := s.Catalog.Find(id)
	if errors.Is(err, market.ErrUnknownAsset) {
		writeError(w, logger, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		logger.Error(err.Error())
		writeError(w, logger, http.StatusInternalServerError, "lookup failed")
		return
	}
	s.Metrics.AssetView(asset.ID)
	writeJSON(w, logger, http.StatusOK, marketDetail{Detail: market.NewDetail(asset), Chart: chart.Asset(asset)})
}
