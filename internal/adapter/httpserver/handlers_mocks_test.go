package httpserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/devbox/internal/domain"
	"github.com/pscheid92/devbox/internal/platform/config"
)

// --- Mock implementations ---

type mockAppService struct {
	createApplicationFn func(ctx context.Context, name, devEnv string) (*domain.Application, error)
	deleteApplicationFn func(ctx context.Context, name string) error
	listApplicationsFn  func(ctx context.Context) ([]domain.Application, error)
	getConfigFn         func(ctx context.Context, appName string) (domain.ConfigDocument, error)
	setConfigFn         func(ctx context.Context, appName string, doc domain.ConfigDocument) error
	listAppContainersFn func(ctx context.Context, appName string) ([]domain.ContainerDescriptor, error)
	listBindingsFn      func(ctx context.Context, unboundOnly bool) ([]domain.Binding, error)
	bindContainerFn     func(ctx context.Context, req domain.BindRequest) (*domain.Binding, error)
	unbindContainerFn   func(ctx context.Context, req domain.UnbindRequest) (*domain.Binding, error)
}

func (m *mockAppService) CreateApplication(ctx context.Context, name, devEnv string) (*domain.Application, error) {
	if m.createApplicationFn != nil {
		return m.createApplicationFn(ctx, name, devEnv)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAppService) DeleteApplication(ctx context.Context, name string) error {
	if m.deleteApplicationFn != nil {
		return m.deleteApplicationFn(ctx, name)
	}
	return nil
}

func (m *mockAppService) ListApplications(ctx context.Context) ([]domain.Application, error) {
	if m.listApplicationsFn != nil {
		return m.listApplicationsFn(ctx)
	}
	return []domain.Application{}, nil
}

func (m *mockAppService) GetConfig(ctx context.Context, appName string) (domain.ConfigDocument, error) {
	if m.getConfigFn != nil {
		return m.getConfigFn(ctx, appName)
	}
	return domain.ConfigDocument(`{}`), nil
}

func (m *mockAppService) SetConfig(ctx context.Context, appName string, doc domain.ConfigDocument) error {
	if m.setConfigFn != nil {
		return m.setConfigFn(ctx, appName, doc)
	}
	return nil
}

func (m *mockAppService) ListAppContainers(ctx context.Context, appName string) ([]domain.ContainerDescriptor, error) {
	if m.listAppContainersFn != nil {
		return m.listAppContainersFn(ctx, appName)
	}
	return []domain.ContainerDescriptor{}, nil
}

func (m *mockAppService) ListBindings(ctx context.Context, unboundOnly bool) ([]domain.Binding, error) {
	if m.listBindingsFn != nil {
		return m.listBindingsFn(ctx, unboundOnly)
	}
	return []domain.Binding{}, nil
}

func (m *mockAppService) BindContainer(ctx context.Context, req domain.BindRequest) (*domain.Binding, error) {
	if m.bindContainerFn != nil {
		return m.bindContainerFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAppService) UnbindContainer(ctx context.Context, req domain.UnbindRequest) (*domain.Binding, error) {
	if m.unbindContainerFn != nil {
		return m.unbindContainerFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

// --- Test helpers ---

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Port:               "8080",
		RateLimitPerSecond: 1000,
		RateLimitBurst:     1000,
	}
}

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	srv := &Server{
		echo:      echo.New(),
		config:    testConfig(),
		app:       app,
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	srv.registerRoutes()

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

func withRateLimit(perSecond float64, burst int) func(*Server) {
	return func(s *Server) {
		s.config.RateLimitPerSecond = perSecond
		s.config.RateLimitBurst = burst
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return ErrorHandlingMiddleware()(handler)(c)
}

func newJSONContext(srv *Server, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return srv.echo.NewContext(req, rec), rec
}

// serve runs a request through the full middleware stack and router.
func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}
