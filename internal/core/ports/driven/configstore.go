package driven

import "github.com/custodia-labs/sercha-finder/internal/core/domain"

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetFloat retrieves a numeric configuration value.
	// The boolean is false if the key doesn't exist or isn't numeric.
	GetFloat(key string) (float64, bool)

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// SettingsOverlay applies externally supplied overrides (environment,
// flags) on top of stored settings.
type SettingsOverlay interface {
	// Apply mutates settings in place with any overrides it holds.
	Apply(settings *domain.AppSettings)
}
