package memory

import (
	"context"
	"testing"

	"github.com/pscheid92/devbox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindings_CreateAssignsIDsFromOne(t *testing.T) {
	ctx := context.Background()
	store := NewBindings()

	first, err := store.Create(ctx, domain.Binding{ContainerName: "container1"})
	require.NoError(t, err)
	second, err := store.Create(ctx, domain.Binding{ContainerName: "container2"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	all, _ := store.List(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "container1", all[0].ContainerName)
	assert.Equal(t, "container2", all[1].ContainerName)
}

func TestBindings_UpdateMutatesInPlace(t *testing.T) {
	ctx := context.Background()
	store := NewBindings()
	created, _ := store.Create(ctx, domain.Binding{PodSelector: "old"})

	updated, err := store.Update(ctx, created.ID, func(b *domain.Binding) {
		b.PodSelector = "new"
		b.ID = 99
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "new", updated.PodSelector)

	all, _ := store.List(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].PodSelector)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestBindings_UpdateUnknown(t *testing.T) {
	store := NewBindings()

	_, err := store.Update(context.Background(), 7, func(*domain.Binding) {})
	assert.ErrorIs(t, err, domain.ErrBindingNotFound)
}

func TestBindings_ReturnedCopiesDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	store := NewBindings()
	appID := int64(3)
	created, _ := store.Create(ctx, domain.Binding{AppID: &appID})

	*created.AppID = 100
	appID = 200

	all, _ := store.List(ctx)
	require.NotNil(t, all[0].AppID)
	assert.Equal(t, int64(3), *all[0].AppID)
}
