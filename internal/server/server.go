// Package server implements the HTTP API for the bee colony simulator:
// a JSON comparison endpoint, a health probe, Prometheus metrics and
// optional static asset serving for the web dashboard.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/beesim/internal/logging"
	"github.com/agbru/beesim/internal/model"
)

// Config holds the server's runtime settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// StaticDir is an optional directory of web assets to serve at /.
	// Empty disables static serving.
	StaticDir string
	// Security controls headers, CORS and request limits.
	Security SecurityConfig
	// Constants parameterize every simulation run by this server.
	Constants model.Constants
}

// Server is the HTTP front end for the simulation engine.
type Server struct {
	config     Config
	metrics    *Metrics
	logger     logging.Logger
	httpServer *http.Server
}

// New creates a Server ready to be started.
func New(config Config, logger logging.Logger) *Server {
	s := &Server{
		config:  config,
		metrics: NewMetrics(),
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/simulate", SecurityMiddleware(config.Security, s.metricsMiddleware(s.handleSimulate)))
	mux.HandleFunc("/api/health", SecurityMiddleware(config.Security, s.metricsMiddleware(s.handleHealth)))
	mux.HandleFunc("/metrics", s.handleMetrics)
	if config.StaticDir != "" {
		mux.HandleFunc("/", SecurityMiddleware(config.Security, s.handleStatic))
	}

	s.httpServer = &http.Server{
		Addr:              config.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe runs the server until it fails or Shutdown is called.
// http.ErrServerClosed is translated to nil.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening",
		logging.String("addr", s.config.Addr),
		logging.String("static_dir", s.config.StaticDir))

	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// metricsMiddleware tracks in-flight requests and per-path request counts.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)

		s.metrics.CountRequest(r.URL.Path, strconv.Itoa(sw.status))
	}
}

// handleMetrics serves Prometheus metrics. Only GET is accepted.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("metrics endpoint rejected method", logging.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// statusWriter captures the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
