package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, "devbox", info.Service)
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.BuildTime)
}

func TestGet_PrefersInjectedValues(t *testing.T) {
	oldCommit, oldTime := Commit, BuildTime
	t.Cleanup(func() { Commit, BuildTime = oldCommit, oldTime })

	Commit = "abc123"
	BuildTime = "2026-01-01T00:00:00Z"

	info := Get()
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "2026-01-01T00:00:00Z", info.BuildTime)
}
