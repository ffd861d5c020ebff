package domain

import "context"

// ContainerDescriptor is a container an application exposes for binding.
type ContainerDescriptor struct {
	Image         string `json:"image"`
	PodSelector   string `json:"podSelector"`
	ContainerName string `json:"containerName"`
}

// Matches reports whether the descriptor is the one addressed by podSelector and containerName.
func (c ContainerDescriptor) Matches(podSelector, containerName string) bool {
	return c.PodSelector == podSelector && c.ContainerName == containerName
}

// ContainerCatalog lists the bindable containers of an application.
// The catalog for a name is populated on first List and cached afterwards.
type ContainerCatalog interface {
	List(ctx context.Context, appName string) ([]ContainerDescriptor, error)
}
