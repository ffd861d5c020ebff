package memory

import (
	"context"
	"testing"

	"github.com/pscheid92/devbox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigs_GetMissing(t *testing.T) {
	store := NewConfigs()

	_, err := store.Get(context.Background(), "demo")
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestConfigs_SetThenGet(t *testing.T) {
	ctx := context.Background()
	store := NewConfigs()

	require.NoError(t, store.Set(ctx, "demo", domain.ConfigDocument(`{"a":1}`)))
	doc, err := store.Get(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(doc))
}

func TestConfigs_SetIsFullReplace(t *testing.T) {
	ctx := context.Background()
	store := NewConfigs()

	require.NoError(t, store.Set(ctx, "demo", domain.ConfigDocument(`{"a":1,"b":2}`)))
	require.NoError(t, store.Set(ctx, "demo", domain.ConfigDocument(`{"c":3}`)))

	doc, err := store.Get(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, `{"c":3}`, string(doc))
}

func TestConfigs_StoredCopyIsIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewConfigs()

	input := domain.ConfigDocument(`{"a":1}`)
	require.NoError(t, store.Set(ctx, "demo", input))
	input[1] = 'X'

	doc, err := store.Get(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(doc))
}
