package memory

import (
	"context"
	"sync"

	"github.com/pscheid92/devbox/internal/domain"
)

// Configs keeps one configuration document per application name.
type Configs struct {
	mu   sync.RWMutex
	docs map[string]domain.ConfigDocument
}

func NewConfigs() *Configs {
	return &Configs{docs: make(map[string]domain.ConfigDocument)}
}

func (s *Configs) Get(_ context.Context, appName string) (domain.ConfigDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[appName]
	if !ok {
		return nil, domain.ErrConfigNotFound
	}
	return doc.Clone(), nil
}

func (s *Configs) Set(_ context.Context, appName string, doc domain.ConfigDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[appName] = doc.Clone()
	return nil
}
