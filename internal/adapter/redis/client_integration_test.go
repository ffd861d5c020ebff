package redis

import (
	"context"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Connects(t *testing.T) {
	hook := NewCircuitBreakerHook(nil)
	client := setupTestClient(t, hook)

	require.NoError(t, client.Ping(context.Background()).Err())
	assert.Equal(t, gobreaker.StateClosed, hook.GetState())
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "://not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse redis URL")
}
