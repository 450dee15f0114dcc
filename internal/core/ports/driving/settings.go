package driving

import "github.com/custodia-labs/sercha-finder/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with overrides applied.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by its config key.
	Set(key, value string) error

	// Keys returns the recognised config keys in display order.
	Keys() []string

	// Value returns the effective value of a config key, formatted as Set accepts it.
	Value(key string) (string, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns the location settings are persisted to.
	Path() string
}
