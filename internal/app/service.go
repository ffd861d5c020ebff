package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/pscheid92/devbox/internal/appcfg"
	"github.com/pscheid92/devbox/internal/domain"
)

// Recorder receives registry events for metrics.
type Recorder interface {
	ApplicationCreated()
	ApplicationsRemoved(n int)
	BindingChanged(op string)
}

type nopRecorder struct{}

func (nopRecorder) ApplicationCreated() {}
func (nopRecorder) ApplicationsRemoved(int) {}
func (nopRecorder) BindingChanged(string) {}

// Metadata derives the display fields of new applications.
type Metadata struct {
	ChartRoot    string
	EntranceHost string
	IDEPort      int
}

func (m Metadata) apply(app *domain.Application) {
	app.Chart = strings.TrimSuffix(m.ChartRoot, "/") + "/" + app.Name
	app.Entrance = m.EntranceHost
	app.IDE = m.EntranceHost + "/proxy/" + strconv.Itoa(m.IDEPort)
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithMetadata(m Metadata) Option {
	return func(s *Service) { s.metadata = m }
}

// Service is the application layer. It is the only component that references
// more than one repository and it owns every cross-registry check.
type Service struct {
	apps     domain.ApplicationRepository
	configs  domain.ConfigRepository
	catalog  domain.ContainerCatalog
	bindings domain.BindingRepository
	clock    clockwork.Clock
	metadata Metadata
	recorder Recorder
}

func NewService(apps domain.ApplicationRepository, configs domain.ConfigRepository, catalog domain.ContainerCatalog, bindings domain.BindingRepository, clock clockwork.Clock, opts ...Option) *Service {
	s := &Service{
		apps:     apps,
		configs:  configs,
		catalog:  catalog,
		bindings: bindings,
		clock:    clock,
		metadata: Metadata{ChartRoot: "/app", EntranceHost: "localhost", IDEPort: 3000},
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateApplication registers a new application. Duplicate names are accepted.
func (s *Service) CreateApplication(ctx context.Context, name, devEnv string) (*domain.Application, error) {
	now := s.clock.Now()
	app := domain.Application{
		Name:       name,
		DevEnv:     devEnv,
		CreateTime: now,
		UpdateTime: now,
	}
	s.metadata.apply(&app)

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("failed to create application %q: %w", name, err)
	}

	s.recorder.ApplicationCreated()
	slog.InfoContext(ctx, "Application created", "app_id", created.ID, "app_name", name)
	return created, nil
}

// DeleteApplication removes every application with the given name. Unknown names are a no-op.
// Config, catalog and bindings of the removed application are left in place.
func (s *Service) DeleteApplication(ctx context.Context, name string) error {
	removed, err := s.apps.DeleteByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to delete application %q: %w", name, err)
	}
	if removed == 0 {
		slog.DebugContext(ctx, "Delete of unknown application ignored", "app_name", name)
		return nil
	}

	s.recorder.ApplicationsRemoved(removed)

	orphaned := 0
	if bindings, err := s.bindings.List(ctx); err == nil {
		for _, b := range bindings {
			if b.Bound() && b.AppName == name {
				orphaned++
			}
		}
	}

	slog.InfoContext(ctx, "Application deleted", "app_name", name, "removed", removed, "orphaned_bindings", orphaned)
	return nil
}

func (s *Service) ListApplications(ctx context.Context) ([]domain.Application, error) {
	apps, err := s.apps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// GetConfig returns the stored document, or the default template when none was stored.
func (s *Service) GetConfig(ctx context.Context, appName string) (domain.ConfigDocument, error) {
	doc, err := s.configs.Get(ctx, appName)
	if errors.Is(err, domain.ErrConfigNotFound) {
		return appcfg.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config for %q: %w", appName, err)
	}
	return doc, nil
}

// SetConfig replaces the document for appName. The shape is not checked.
func (s *Service) SetConfig(ctx context.Context, appName string, doc domain.ConfigDocument) error {
	if err := s.configs.Set(ctx, appName, doc.Clone()); err != nil {
		return fmt.Errorf("failed to set config for %q: %w", appName, err)
	}
	slog.InfoContext(ctx, "Config saved", "app_name", appName, "bytes", len(doc))
	return nil
}

func (s *Service) ListAppContainers(ctx context.Context, appName string) ([]domain.ContainerDescriptor, error) {
	containers, err := s.catalog.List(ctx, appName)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers for %q: %w", appName, err)
	}
	return containers, nil
}
