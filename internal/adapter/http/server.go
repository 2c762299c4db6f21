// Package http exposes the service's HTTP surface: health, readiness,
// metrics, and the JSON API for conditions, spots, and ratings.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/forecast"
	"github.com/couchcryptid/fishcast/internal/observability"
	"github.com/couchcryptid/fishcast/internal/scoring"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// ConditionSource produces the condition bundle the API serves from.
type ConditionSource interface {
	FetchAll(ctx context.Context) forecast.Bundle
}

// Server exposes the HTTP endpoints.
type Server struct {
	httpServer *http.Server
	source     ConditionSource
	spots      []domain.Spot
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates an HTTP server with operational routes (/healthz,
// /readyz, /metrics) and the /api/v1 JSON API.
func NewServer(addr string, source ConditionSource, ready ReadinessChecker, spots []domain.Spot, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		source:  source,
		spots:   spots,
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/v1/conditions", s.handleConditions)
	mux.HandleFunc("GET /api/v1/spots", s.handleSpots)
	mux.HandleFunc("GET /api/v1/spots/{id}", s.handleSpot)
	mux.HandleFunc("GET /api/v1/ratings", s.handleRatings)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleConditions serves the current bundle as-is, fallback data and
// diagnostic included.
func (s *Server) handleConditions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.source.FetchAll(r.Context()))
}

type spotsResponse struct {
	Spots   []domain.Spot `json:"spots"`
	Species []string      `json:"species"`
}

func (s *Server) handleSpots(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, spotsResponse{
		Spots:   s.spots,
		Species: speciesOf(s.spots),
	})
}

func (s *Server) handleSpot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, spot := range s.spots {
		if spot.ID == id {
			writeJSON(w, http.StatusOK, spot)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown spot id " + id})
}

type ratingsResponse struct {
	Date     string           `json:"date"`
	Species  string           `json:"species"`
	Day      domain.DayRecord `json:"day"`
	Insights scoring.Insights `json:"insights"`
	Results  []scoring.Result `json:"results"`
	Error    string           `json:"error,omitempty"`
}

// handleRatings rates the catalog for one forecast day. date defaults to
// the first day of the horizon, species to the "all" expansion. Results
// come back sorted by score, catalog order breaking ties.
func (s *Server) handleRatings(w http.ResponseWriter, r *http.Request) {
	bundle := s.source.FetchAll(r.Context())
	if len(bundle.Days) == 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no forecast available"})
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = bundle.Days[0].Date
	}
	day, ok := findDay(bundle.Days, date)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no forecast for " + date})
		return
	}

	species := r.URL.Query().Get("species")
	if species == "" {
		species = scoring.SpeciesAll
	}

	cond := domain.Conditions(day, bundle.Tides)
	results := scoring.ScoreCatalog(s.spots, cond, species)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	s.metrics.RatingsComputed.Add(float64(len(results)))

	writeJSON(w, http.StatusOK, ratingsResponse{
		Date:     date,
		Species:  species,
		Day:      day,
		Insights: scoring.DayInsights(day),
		Results:  results,
		Error:    bundle.Err,
	})
}

func findDay(days []domain.DayRecord, date string) (domain.DayRecord, bool) {
	for _, d := range days {
		if d.Date == date {
			return d, true
		}
	}
	return domain.DayRecord{}, false
}

// speciesOf collects the distinct species across the served spots, sorted.
func speciesOf(spots []domain.Spot) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range spots {
		for _, sp := range s.Species {
			if _, ok := seen[sp]; ok {
				continue
			}
			seen[sp] = struct{}{}
			out = append(out, sp)
		}
	}
	sort.Strings(out)
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
