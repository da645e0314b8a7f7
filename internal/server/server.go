// Package server serves the lab page and its JSON API over HTTP.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/finlab/finance-lab/internal/app"
	"github.com/finlab/finance-lab/internal/calculation"
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/finlab/finance-lab/internal/faq"
	"github.com/finlab/finance-lab/internal/market"
	"github.com/finlab/finance-lab/internal/metrics"
)

// Server wires the lab components to HTTP routes. Only mounted components get routes.
type Server struct {
	Config    *domain.Configuration
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Engine    *calculation.SimulationEngine
	Catalog   *market.Catalog
	Responder *faq.Responder
	Mounted   app.Mounted
}

// New builds a server from a validated configuration
func New(cfg *domain.Configuration, logger *zap.Logger, m *metrics.Metrics) *Server {
	engine := calculation.NewSimulationEngine()
	engine.SetLogger(logger.Sugar())
	mounted := app.Mount(app.Components, cfg.Surfaces)
	for name, missing := range mounted.Skipped {
		logger.Info("component skipped", zap.String("component", string(name)), zap.Any("missing", missing))
	}
	return &Server{
		Config:    cfg,
		Logger:    logger,
		Metrics:   m,
		Engine:    engine,
		Catalog:   market.NewCatalog(),
		Responder: faq.DefaultResponder(),
		Mounted:   mounted,
	}
}

// Router builds the chi router
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.Logger, s.Metrics))
	r.Use(middleware.Recoverer)
	if s.Config.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.Config.Server.RequestTimeout))
	}

	r.Get("/", s.Page)
	r.Get("/healthz", s.Health)
	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		if s.Mounted.Enabled(app.ComponentSimulation) {
			r.Post("/simulate", s.Simulate)
		}
		if s.Mounted.Enabled(app.ComponentMarkets) {
			r.Get("/markets", s.ListMarkets)
			r.Get("/markets/{id}", s.GetMarket)
		}
		if s.Mounted.Enabled(app.ComponentChatbot) {
			r.Get("/faq", s.ListTopics)
			r.Post("/faq/{index}", s.SelectTopic)
			r.Post("/chat", s.Chat)
		}
	})
	return r
}

// HTTPServer returns an http.Server listening on the configured address
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.Config.Server.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.Config.Server.ReadTimeout,
		WriteTimeout: s.Config.Server.WriteTimeout,
		IdleTimeout:  s.Config.Server.IdleTimeout,
	}
}

// Health reports liveness and the mounted components
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.Logger, http.StatusOK, map[string]any{
		"status":     "ok",
		"components": s.Mounted.EnabledNames(),
	})
}
