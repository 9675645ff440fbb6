// Package api wires the HTTP surface of the geodetic portal: public
// station browsing and proximity search, the certificate request flow,
// and the staff endpoints behind it.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/avendano/geoportal/internal/api/handler"
	mw "github.com/avendano/geoportal/internal/api/middleware"
	"github.com/avendano/geoportal/internal/config"
	"github.com/avendano/geoportal/internal/core"
)

type Server struct {
	router   chi.Router
	logger   zerolog.Logger
	services *core.Services
	pool     *pgxpool.Pool
	cfg      *config.Config
}

func NewServer(logger zerolog.Logger, pool *pgxpool.Pool, services *core.Services, cfg *config.Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		services: services,
		pool:     pool,
		cfg:      cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
}

func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint
	s.router.Handle("/metrics", promhttp.Handler())

	// Health check endpoints
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Station catalog
		station := handler.NewStation(s.services.Catalog)
		r.Get("/stations", station.List)
		r.Get("/stations/count", station.Count)
		r.Get("/stations/{name}", station.Get)

		// Proximity search
		search := handler.NewSearch(s.services.Search, s.cfg.MaxSearchRadiusKm)
		r.Get("/search", search.Nearby)

		// Certificate requests
		req := handler.NewRequest(s.services.Ledger)
		r.Post("/requests", req.Submit)
		r.Post("/requests/complete", req.Complete)
		r.Get("/requests/track", req.Track)
		r.Get("/requests/pending", req.Pending)

		// Fulfillment reconciliation queue
		recon := handler.NewReconciliation(s.services.Reconciliation)
		r.Get("/reconciliation-tasks", recon.List)
		r.Post("/reconciliation-tasks/{id}/resolve", recon.Resolve)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := s.pool.Ping(ctx); err != nil {
		checks["db"] = err.Error()
		healthy = false
	} else {
		checks["db"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(checks)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
