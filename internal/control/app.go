package control

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/vietddude/bfhl/internal/api"
	"github.com/vietddude/bfhl/internal/core/config"
	"github.com/vietddude/bfhl/internal/core/domain"
	"github.com/vietddude/bfhl/internal/core/generator"
	"github.com/vietddude/bfhl/internal/core/service"
	"github.com/vietddude/bfhl/internal/grpcapi"
	"github.com/vietddude/bfhl/internal/health"
)

// App is the main application struct that manages the servers' lifecycle.
type App struct {
	cfg        Config
	svc        *service.Service
	healthMon  *health.Monitor
	httpServer *api.Server
	grpcServer *grpcapi.Server
	httpLn     net.Listener
	grpcLn     net.Listener
	wg         sync.WaitGroup
	log        *slog.Logger
}

// Config holds the application configuration.
type Config struct {
	HTTPAddr  string
	GRPCAddr  string // empty disables gRPC
	HTTP      api.Config
	Identity  domain.Identity
	Generator config.GeneratorConfig
	Health    config.HealthConfig
}

// ConfigFrom transforms the file configuration into an App configuration.
func ConfigFrom(cfg *config.AppConfig) Config {
	c := Config{
		HTTPAddr: fmt.Sprintf(":%d", cfg.Server.Port),
		HTTP: api.Config{
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			MaxBodyBytes: cfg.Server.MaxBodyBytes,
			RateLimit:    cfg.Server.RateLimit,
			RateBurst:    cfg.Server.RateBurst,
		},
		Identity:  cfg.Identity,
		Generator: cfg.Generator,
		Health:    cfg.Health,
	}
	if cfg.Server.GRPCPort != 0 {
		c.GRPCAddr = fmt.Sprintf(":%d", cfg.Server.GRPCPort)
	}
	return c
}

// NewApp creates a new App instance with all dependencies initialized.
func NewApp(cfg Config) (*App, error) {
	if cfg.HTTPAddr == "" {
		return nil, errors.New("http address is required")
	}

	svc := service.New(cfg.Identity, generator.New(cfg.Generator.MaxCount))

	healthMon := health.NewMonitor(cfg.Health.CheckInterval)
	healthMon.Register("classifier", true, health.ClassifierCheck)

	app := &App{
		cfg:        cfg,
		svc:        svc,
		healthMon:  healthMon,
		httpServer: api.NewServer(cfg.HTTP, svc, healthMon),
		log:        slog.Default(),
	}

	if cfg.GRPCAddr != "" {
		app.grpcServer = grpcapi.NewServer(svc)
		healthMon.Register("grpc", false, app.grpcServer.Check)
	}

	return app, nil
}

// Start binds the listeners and serves in the background.
func (a *App) Start(ctx context.Context) error {
	httpLn, err := net.Listen("tcp", a.cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.cfg.HTTPAddr, err)
	}
	a.httpLn = httpLn

	if a.grpcServer != nil {
		grpcLn, err := net.Listen("tcp", a.cfg.GRPCAddr)
		if err != nil {
			httpLn.Close()
			return fmt.Errorf("failed to listen on %s: %w", a.cfg.GRPCAddr, err)
		}
		a.grpcLn = grpcLn
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.httpServer.Serve(ctx, httpLn); err != nil {
			a.log.Error("HTTP server failed", "error", err)
		}
	}()

	if a.grpcServer != nil {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			if err := a.grpcServer.Serve(ctx, a.grpcLn); err != nil {
				a.log.Error("gRPC server failed", "error", err)
			}
		}()
	}

	a.log.Info("App started",
		"http", httpLn.Addr().String(),
		"grpc", a.GRPCAddr(),
		"user_id", a.cfg.Identity.UserID(time.Now()),
	)
	return nil
}

// HTTPAddr returns the bound HTTP address once started.
func (a *App) HTTPAddr() string {
	if a.httpLn == nil {
		return ""
	}
	return a.httpLn.Addr().String()
}

// GRPCAddr returns the bound gRPC address, or "" when gRPC is disabled.
func (a *App) GRPCAddr() string {
	if a.grpcLn == nil {
		return ""
	}
	return a.grpcLn.Addr().String()
}

// Stop gracefully stops both servers.
func (a *App) Stop(ctx context.Context) error {
	a.log.Info("Stopping App...")

	var errs []error
	if err := a.httpServer.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if a.grpcServer != nil {
		if err := a.grpcServer.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
		}
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		errs = append(errs, ctx.Err())
	}

	return errors.Join(errs...)
}
