package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/pscheid92/devbox/internal/domain"
)

// DefaultSeed is the container list every application's catalog starts with.
func DefaultSeed() []domain.ContainerDescriptor {
	return []domain.ContainerDescriptor{
		{Image: "image1", PodSelector: "app=devapp1, label1=value1", ContainerName: "container1"},
		{Image: "image2", PodSelector: "app=devapp2, label1=value2", ContainerName: "container2"},
	}
}

// Catalog lazily creates and caches the bindable containers of each application.
type Catalog struct {
	mu       sync.Mutex
	seed     func() []domain.ContainerDescriptor
	catalogs map[string][]domain.ContainerDescriptor
}

// NewCatalog returns a catalog seeded by seed; nil means DefaultSeed.
func NewCatalog(seed func() []domain.ContainerDescriptor) *Catalog {
	if seed == nil {
		seed = DefaultSeed
	}
	return &Catalog{
		seed:     seed,
		catalogs: make(map[string][]domain.ContainerDescriptor),
	}
}

func (c *Catalog) List(_ context.Context, appName string) ([]domain.ContainerDescriptor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	containers, ok := c.catalogs[appName]
	if !ok {
		containers = c.seed()
		c.catalogs[appName] = containers
	}
	return slices.Clone(containers), nil
}
