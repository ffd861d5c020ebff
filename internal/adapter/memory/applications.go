package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pscheid92/devbox/internal/domain"
)

// Applications is the in-memory application registry.
// IDs come from nextID, never from the slice length, so deletes cannot cause reuse.
type Applications struct {
	mu     sync.RWMutex
	apps   []domain.Application
	nextID int64
}

func NewApplications() *Applications {
	return &Applications{}
}

func (s *Applications) Create(_ context.Context, app domain.Application) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app.ID = s.nextID
	s.nextID++
	s.apps = append(s.apps, app)
	return &app, nil
}

// DeleteByName removes every application with the given name and reports how many were removed.
func (s *Applications) DeleteByName(_ context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.apps)
	s.apps = slices.DeleteFunc(s.apps, func(a domain.Application) bool {
		return a.Name == name
	})
	return before - len(s.apps), nil
}

func (s *Applications) List(_ context.Context) ([]domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Application, len(s.apps))
	copy(out, s.apps)
	return out, nil
}

func (s *Applications) GetByID(_ context.Context, id int64) (*domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.apps {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", domain.ErrApplicationNotFound, id)
}
