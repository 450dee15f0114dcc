package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("api.base_url", "http://localhost:9000"))
	require.NoError(t, store.Set("search.debounce_ms", int64(250)))
	require.NoError(t, store.Set("api.rate_limit", int64(4)))

	assert.Equal(t, "http://localhost:9000", store.GetString("api.base_url"))
	assert.Equal(t, 250, store.GetInt("search.debounce_ms"))
	rate, ok := store.GetFloat("api.rate_limit")
	assert.True(t, ok)
	assert.InDelta(t, 4.0, rate, 1e-9)

	_, ok = store.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_LoadRestoresSeed(t *testing.T) {
	seed := map[string]any{"api.base_url": "http://seed:8000"}
	store := NewConfigStoreWith(seed)

	require.NoError(t, store.Set("api.base_url", "http://changed:8000"))
	require.NoError(t, store.Set("extra", 1))
	require.NoError(t, store.Load())

	assert.Equal(t, "http://seed:8000", store.GetString("api.base_url"))
	_, ok := store.Get("extra")
	assert.False(t, ok)

	// Seed is copied, so mutating the caller's map has no effect.
	seed["api.base_url"] = "http://mutated:8000"
	require.NoError(t, store.Load())
	assert.Equal(t, "http://seed:8000", store.GetString("api.base_url"))
}

func TestConfigStore_SaveIsNoop(t *testing.T) {
	store := NewConfigStore()
	assert.NoError(t, store.Save())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("counter", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("counter")
		}()
	}

	wg.Wait()
	_, ok := store.Get("counter")
	assert.True(t, ok)
}
