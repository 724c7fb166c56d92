package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWatcherInitialLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "router:\n  cacheLimit: 16\n")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Stop() }()

	cfg := w.LastConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, 16, cfg.Router.CacheLimit)
}

func TestWatcherInitialLoadInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "logging:\n  level: loud\n")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	err = w.Start(context.Background())
	require.Error(t, err)
}

func TestWatcherReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "router:\n  cacheLimit: 16\n")

	var reloaded atomic.Int64
	var gotLimit atomic.Int64

	w, err := NewWatcher(path, func(cfg *Config) {
		gotLimit.Store(int64(cfg.Router.CacheLimit))
		reloaded.Add(1)
	}, WithDebounceDelay(20*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Stop() }()

	writeConfig(t, path, "router:\n  cacheLimit: 99\n")

	require.Eventually(t, func() bool {
		return reloaded.Load() >= 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(99), gotLimit.Load())
	assert.Equal(t, 99, w.LastConfig().Router.CacheLimit)
}

func TestWatcherReloadInvalidKeepsLastConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "router:\n  cacheLimit: 16\n")

	var failures atomic.Int64
	w, err := NewWatcher(path, nil,
		WithDebounceDelay(20*time.Millisecond),
		WithErrorCallback(func(error) { failures.Add(1) }),
	)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Stop() }()

	writeConfig(t, path, "logging:\n  level: loud\n")

	require.Eventually(t, func() bool {
		return failures.Load() >= 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 16, w.LastConfig().Router.CacheLimit)
}

func TestWatcherStopIdempotentWhenNotRunning(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "router:\n  cacheLimit: 16\n")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	assert.NoError(t, w.Stop())
}
