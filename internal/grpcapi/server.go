package grpcapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/vietddude/bfhl/internal/core/service"
	"github.com/vietddude/bfhl/internal/metrics"
)

var ErrNotServing = errors.New("grpc server is not serving")

// Server serves bfhl.v1.Classifier and the standard health service.
type Server struct {
	grpc    *grpc.Server
	health  *grpchealth.Server
	serving atomic.Bool
	log     *slog.Logger
}

// NewServer creates a new gRPC server.
func NewServer(svc *service.Service) *Server {
	log := slog.Default().With("component", "grpc")

	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recoveryInterceptor(log),
			observabilityInterceptor(log),
		),
	)
	gs.RegisterService(&classifierServiceDesc, &classifierService{svc: svc})

	hs := grpchealth.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(gs, hs)

	return &Server{
		grpc:   gs,
		health: hs,
		log:    log,
	}
}

// Serve accepts connections on ln until the server is stopped.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.serving.Store(true)
	defer s.serving.Store(false)

	s.log.Info("gRPC server listening", "addr", ln.Addr().String())
	return s.grpc.Serve(ln)
}

// Stop drains in-flight calls, forcing the stop when ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	s.serving.Store(false)

	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}

// Check reports ErrNotServing unless the server is accepting calls.
func (s *Server) Check(ctx context.Context) error {
	if !s.serving.Load() {
		return ErrNotServing
	}
	return nil
}

func recoveryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("Handler panicked", "panic", rec, "method", info.FullMethod)
				err = status.Error(codes.Internal, "internal server error")
			}
		}()
		return handler(ctx, req)
	}
}

func observabilityInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		duration := time.Since(start)

		code := status.Code(err)
		metrics.GRPCRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
		metrics.GRPCLatency.WithLabelValues(info.FullMethod).Observe(duration.Seconds())

		log.Debug("gRPC request", "method", info.FullMethod, "code", code.String(), "duration", duration)
		return resp, err
	}
}
