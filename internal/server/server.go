// Package server exposes the flight board over HTTP so a terminal board can
// read from a remote source.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/flightboard/internal/flights"
)

const (
	defaultRateLimit = 10
	shutdownTimeout  = 5 * time.Second
)

// Options configure a Server.
type Options struct {
	Source    flights.Source
	CacheTTL  time.Duration // zero disables caching
	RateLimit float64       // requests per second per client; zero uses 10
	Burst     int           // zero uses twice the rate
	Logger    *zap.SugaredLogger
	// Registry receives the metrics. Nil creates a private registry.
	Registry *prometheus.Registry
}

// Server serves GET /api/flights/{viewMode}.
type Server struct {
	src      flights.Source
	cache    *gocache.Cache
	ttl      time.Duration
	log      *zap.SugaredLogger
	metrics  *Metrics
	registry *prometheus.Registry
	router   chi.Router
	started  time.Time
}

// New creates a server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Source == nil {
		return nil, errors.New("server: source is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	perSecond := opts.RateLimit
	if perSecond <= 0 {
		perSecond = defaultRateLimit
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = int(2 * perSecond)
	}

	s := &Server{
		src:      opts.Source,
		ttl:      opts.CacheTTL,
		log:      logger,
		metrics:  NewMetrics(reg),
		registry: reg,
		started:  time.Now(),
	}
	if s.ttl > 0 {
		s.cache = gocache.New(s.ttl, 2*s.ttl)
	}
	s.setupRoutes(newClientLimiter(perSecond, burst))
	return s, nil
}

func (s *Server) setupRoutes(limiter *clientLimiter) {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(instrument(s.metrics, s.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.middleware(s.metrics))
		r.Get("/flights/{viewMode}", s.handleFlights)
	})

	s.router = r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Infow("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Infow("server stopping", "addr", addr)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleFlights(w http.ResponseWriter, r *http.Request) {
	view, err := flights.ParseViewMode(chi.URLParam(r, "viewMode"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	records, err := s.load(r.Context(), view)
	if err != nil {
		s.metrics.FetchErrorsTotal.WithLabelValues(string(view)).Inc()
		s.log.Warnw("fetch failed",
			"request_id", RequestID(r.Context()),
			"view", view,
			"error", err,
		)
		writeError(w, http.StatusServiceUnavailable, "Unable to load flight information. Please try again later.")
		return
	}

	s.metrics.FlightsServedTotal.WithLabelValues(string(view)).Add(float64(len(records)))
	writeJSON(w, http.StatusOK, records)
}

// load serves from the per-view cache when it is enabled and warm.
func (s *Server) load(ctx context.Context, view flights.ViewMode) ([]flights.Record, error) {
	key := string(view)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			s.metrics.CacheHitsTotal.WithLabelValues(key).Inc()
			return cached.([]flights.Record), nil
		}
		s.metrics.CacheMissesTotal.WithLabelValues(key).Inc()
	}

	records, err := s.src.Fetch(ctx, view)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []flights.Record{}
	}
	if s.cache != nil {
		s.cache.SetDefault(key, records)
	}
	return records, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
