package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeSettings(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"settings"}, args...))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSettingsCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range settingsCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["show"])
	assert.True(t, names["set"])
	assert.True(t, names["path"])
}

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeSettings()

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "api.base_url")
	assert.Contains(t, out, "http://127.0.0.1:8000")
	assert.Contains(t, out, "search.debounce_ms")
	assert.Contains(t, out, "300")
	assert.Contains(t, out, "Config file: :memory:")
}

func TestSettingsCmd_SetThenShow(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeSettings("set", "search.debounce_ms", "450")
	require.NoError(t, err)
	assert.Contains(t, out, "Set search.debounce_ms = 450")

	out, err = executeSettings("show")
	require.NoError(t, err)
	assert.Contains(t, out, "450")
}

func TestSettingsCmd_SetUnknownKey(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeSettings("set", "search.mode", "hybrid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}

func TestSettingsCmd_SetInvalidValue(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeSettings("set", "api.base_url", "ftp://files")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set api.base_url")
}

func TestSettingsCmd_SetRequiresTwoArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeSettings("set", "api.base_url")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsCmd_Path(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeSettings("path")

	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", out)
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	for _, args := range [][]string{{}, {"set", "api.base_url", "http://x"}, {"path"}} {
		_, err := executeSettings(args...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
}
