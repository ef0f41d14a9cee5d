// Package api exposes the classification service over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vietddude/bfhl/internal/core/service"
	"github.com/vietddude/bfhl/internal/health"
)

// Config holds HTTP server settings.
type Config struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodyBytes int64
	RateLimit    float64 // requests per second per client, 0 = unlimited
	RateBurst    int
}

// Server provides the HTTP endpoints of the service.
type Server struct {
	svc     *service.Service
	monitor *health.Monitor
	limiter *RateLimiter
	maxBody int64
	server  *http.Server
	log     *slog.Logger
}

// NewServer creates a new HTTP server.
func NewServer(cfg Config, svc *service.Service, monitor *health.Monitor) *Server {
	s := &Server{
		svc:     svc,
		monitor: monitor,
		maxBody: cfg.MaxBodyBytes,
		log:     slog.Default().With("component", "http"),
	}
	if cfg.RateLimit > 0 {
		s.limiter = NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	}

	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /bfhl", s.handleProcess)
	mux.HandleFunc("GET /bfhl", s.handleInfo)
	mux.HandleFunc("GET /bfhl/generate", s.handleGenerate)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /health/detailed", s.handleDetailed)
	mux.Handle("GET /metrics", promhttp.Handler())

	var h http.Handler = mux
	if s.limiter != nil {
		h = s.limiter.Handler(h)
	}
	h = withObservability(s.log, h)
	h = withRequestID(h)
	return withRecovery(s.log, h)
}

// Serve accepts connections on ln until the server is stopped.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.limiter != nil {
		go s.limiter.Run(ctx, time.Minute)
	}

	s.log.Info("HTTP server listening", "addr", ln.Addr().String())
	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
