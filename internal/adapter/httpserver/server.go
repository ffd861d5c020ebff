package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pscheid92/devbox/internal/adapter/metrics"
	"github.com/pscheid92/devbox/internal/domain"
	"github.com/pscheid92/devbox/internal/platform/config"
)

type appService interface {
	CreateApplication(ctx context.Context, name, devEnv string) (*domain.Application, error)
	DeleteApplication(ctx context.Context, name string) error
	ListApplications(ctx context.Context) ([]domain.Application, error)
	GetConfig(ctx context.Context, appName string) (domain.ConfigDocument, error)
	SetConfig(ctx context.Context, appName string, doc domain.ConfigDocument) error
	ListAppContainers(ctx context.Context, appName string) ([]domain.ContainerDescriptor, error)
	ListBindings(ctx context.Context, unboundOnly bool) ([]domain.Binding, error)
	BindContainer(ctx context.Context, req domain.BindRequest) (*domain.Binding, error)
	UnbindContainer(ctx context.Context, req domain.UnbindRequest) (*domain.Binding, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config
	app    appService

	registry     *prometheus.Registry
	httpMetrics  *metrics.HTTPMetrics
	healthChecks []HealthCheck
	startTime    time.Time
}

// NewServer builds the HTTP boundary. A nil registry disables /metrics and request metrics.
func NewServer(cfg *config.Config, app appService, registry *prometheus.Registry, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		registry:     registry,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}
	if registry != nil {
		srv.httpMetrics = metrics.NewHTTPMetrics(registry)
	}

	srv.registerRoutes()

	return srv
}

// Start blocks until the server stops. A graceful shutdown is not reported as an error.
func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
