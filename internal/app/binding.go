package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pscheid92/devbox/internal/domain"
)

const (
	opCreate = "create"
	opRebind = "rebind"
	opUnbind = "unbind"
)

// BindContainer attaches a catalog container to an application. Without a container id a
// new binding is created; with one, that binding is re-pointed and keeps its id and createTime.
func (s *Service) BindContainer(ctx context.Context, req domain.BindRequest) (*domain.Binding, error) {
	app, err := s.apps.GetByID(ctx, req.AppID)
	if err != nil {
		return nil, err
	}

	containers, err := s.catalog.List(ctx, app.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers for %q: %w", app.Name, err)
	}
	matches := func(c domain.ContainerDescriptor) bool { return c.Matches(req.PodSelector, req.ContainerName) }
	if !slices.ContainsFunc(containers, matches) {
		return nil, fmt.Errorf("%w: %q/%q in application %q", domain.ErrContainerNotFound, req.PodSelector, req.ContainerName, app.Name)
	}

	now := s.clock.Now()
	appID := app.ID

	if req.ContainerID != nil {
		updated, err := s.bindings.Update(ctx, *req.ContainerID, func(b *domain.Binding) {
			b.AppID = &appID
			b.AppName = app.Name
			b.PodSelector = req.PodSelector
			b.ContainerName = req.ContainerName
			b.DevEnv = req.DevEnv
			b.State = domain.BindingRunning
			b.UpdateTime = now
		})
		if err != nil {
			return nil, err
		}

		s.recorder.BindingChanged(opRebind)
		slog.InfoContext(ctx, "Container rebound", "binding_id", updated.ID, "app_id", appID, "app_name", app.Name, "container", req.ContainerName)
		return updated, nil
	}

	created, err := s.bindings.Create(ctx, domain.Binding{
		AppID:         &appID,
		AppName:       app.Name,
		PodSelector:   req.PodSelector,
		ContainerName: req.ContainerName,
		DevEnv:        req.DevEnv,
		State:         domain.BindingRunning,
		CreateTime:    now,
		UpdateTime:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create binding: %w", err)
	}

	s.recorder.BindingChanged(opCreate)
	slog.InfoContext(ctx, "Container bound", "binding_id", created.ID, "app_id", appID, "app_name", app.Name, "container", req.ContainerName)
	return created, nil
}

// UnbindContainer clears the application association of a binding. The record stays in the
// list with its container name and state; only the association fields are emptied.
func (s *Service) UnbindContainer(ctx context.Context, req domain.UnbindRequest) (*domain.Binding, error) {
	now := s.clock.Now()
	updated, err := s.bindings.Update(ctx, req.ContainerID, func(b *domain.Binding) {
		b.PodSelector = ""
		b.AppID = nil
		b.AppName = ""
		b.UpdateTime = now
	})
	if err != nil {
		return nil, err
	}

	s.recorder.BindingChanged(opUnbind)
	slog.InfoContext(ctx, "Container unbound", "binding_id", updated.ID, "container", updated.ContainerName)
	return updated, nil
}

// ListBindings returns bindings in creation order. With unboundOnly, only bindings
// without an application are returned.
func (s *Service) ListBindings(ctx context.Context, unboundOnly bool) ([]domain.Binding, error) {
	bindings, err := s.bindings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bindings: %w", err)
	}
	if unboundOnly {
		bindings = slices.DeleteFunc(bindings, domain.Binding.Bound)
	}
	return bindings, nil
}
