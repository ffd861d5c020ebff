package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pscheid92/devbox/internal/domain"
)

// Bindings is the live binding list. The id counter is shared by all bindings and starts at 1.
type Bindings struct {
	mu       sync.RWMutex
	bindings []*domain.Binding
	nextID   int64
}

func NewBindings() *Bindings {
	return &Bindings{nextID: 1}
}

func (s *Bindings) Create(_ context.Context, b domain.Binding) (*domain.Binding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.nextID
	s.nextID++
	stored := b.Clone()
	s.bindings = append(s.bindings, &stored)

	created := b.Clone()
	return &created, nil
}

func (s *Bindings) Update(_ context.Context, id int64, mutate func(*domain.Binding)) (*domain.Binding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.bindings, func(b *domain.Binding) bool { return b.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrBindingNotFound, id)
	}

	b := s.bindings[idx]
	mutate(b)
	b.ID = id

	updated := b.Clone()
	return &updated, nil
}

func (s *Bindings) List(_ context.Context) ([]domain.Binding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Binding, 0, len(s.bindings))
	for _, b := range s.bindings {
		out = append(out, b.Clone())
	}
	return out, nil
}
