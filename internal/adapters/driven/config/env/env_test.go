package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("SERCHA_FINDER_API_URL", "http://search.local:9000/")
	t.Setenv("SERCHA_FINDER_TIMEOUT", "5s")
	t.Setenv("SERCHA_FINDER_RATE_LIMIT", "0")
	t.Setenv("SERCHA_FINDER_DEBOUNCE", "150ms")

	o, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	settings := domain.DefaultAppSettings()
	o.Apply(&settings)

	assert.Equal(t, "http://search.local:9000", settings.API.BaseURL)
	assert.Equal(t, 5*time.Second, settings.API.Timeout)
	assert.Equal(t, 0.0, settings.API.RateLimit)
	assert.Equal(t, 150*time.Millisecond, settings.Search.Debounce)
}

func TestLoad_UnsetLeavesSettingsAlone(t *testing.T) {
	o, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	settings := domain.DefaultAppSettings()
	o.Apply(&settings)

	assert.Equal(t, domain.DefaultAppSettings(), settings)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SERCHA_FINDER_DEBOUNCE", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SERCHA_FINDER_API_URL=http://from-dotenv:8000\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("SERCHA_FINDER_API_URL") })

	o, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-dotenv:8000", o.APIURL)
}

func TestOverrides_ApplyNil(t *testing.T) {
	var o *Overrides
	settings := domain.DefaultAppSettings()

	o.Apply(&settings)

	assert.Equal(t, domain.DefaultAppSettings(), settings)
}
