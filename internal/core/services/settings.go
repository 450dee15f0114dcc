package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyAPIBaseURL     = "api.base_url"
	KeyAPITimeout     = "api.timeout_seconds"
	KeyAPIRateLimit   = "api.rate_limit"
	KeySearchDebounce = "search.debounce_ms"
)

// SettingsService manages application settings.
// Stored values come from the ConfigStore; overlays are applied on read only.
type SettingsService struct {
	configStore driven.ConfigStore
	overlays    []driven.SettingsOverlay
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, overlays ...driven.SettingsOverlay) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		overlays:    overlays,
	}
}

// Get retrieves current application settings, with overlays applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := s.stored()
	for _, o := range s.overlays {
		if o != nil {
			o.Apply(settings)
		}
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return settings, nil
}

// stored reads persisted values over the defaults.
func (s *SettingsService) stored() *domain.AppSettings {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:   s.getString(KeyAPIBaseURL, defaults.API.BaseURL),
			Timeout:   s.getDuration(KeyAPITimeout, time.Second, defaults.API.Timeout),
			RateLimit: s.getFloat(KeyAPIRateLimit, defaults.API.RateLimit),
		},
		Search: domain.SearchSettings{
			Debounce: s.getDuration(KeySearchDebounce, time.Millisecond, defaults.Search.Debounce),
		},
	}
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	if err := s.configStore.Set(KeyAPIBaseURL, settings.API.BaseURL); err != nil {
		return fmt.Errorf("save api base_url: %w", err)
	}
	if err := s.configStore.Set(KeyAPITimeout, int(settings.API.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save api timeout: %w", err)
	}
	if err := s.configStore.Set(KeyAPIRateLimit, settings.API.RateLimit); err != nil {
		return fmt.Errorf("save api rate_limit: %w", err)
	}
	if err := s.configStore.Set(KeySearchDebounce, int(settings.Search.Debounce/time.Millisecond)); err != nil {
		return fmt.Errorf("save search debounce: %w", err)
	}

	return nil
}

// Set updates a single setting by its config key.
// The value is validated against the full settings before it is stored.
func (s *SettingsService) Set(key, value string) error {
	settings := s.stored()
	value = strings.TrimSpace(value)

	switch key {
	case KeyAPIBaseURL:
		settings.API.BaseURL = strings.TrimRight(value, "/")
	case KeyAPITimeout:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number of seconds", domain.ErrInvalidInput, key)
		}
		settings.API.Timeout = time.Duration(n) * time.Second
	case KeyAPIRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		settings.API.RateLimit = f
	case KeySearchDebounce:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number of milliseconds", domain.ErrInvalidInput, key)
		}
		settings.Search.Debounce = time.Duration(n) * time.Millisecond
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	return s.Save(settings)
}

// Keys returns the recognised config keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{KeyAPIBaseURL, KeyAPITimeout, KeyAPIRateLimit, KeySearchDebounce}
}

// Value returns the effective value of key, formatted as Set accepts it.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case KeyAPIBaseURL:
		return settings.API.BaseURL, nil
	case KeyAPITimeout:
		return strconv.Itoa(int(settings.API.Timeout / time.Second)), nil
	case KeyAPIRateLimit:
		return strconv.FormatFloat(settings.API.RateLimit, 'f', -1, 64), nil
	case KeySearchDebounce:
		return strconv.Itoa(int(settings.Search.Debounce / time.Millisecond)), nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the location settings are persisted to.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// getString retrieves a string value or returns the default.
func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getDuration retrieves an integer count of unit, or the default when unset or non-positive.
func (s *SettingsService) getDuration(key string, unit, defaultVal time.Duration) time.Duration {
	n := s.configStore.GetInt(key)
	if n <= 0 {
		return defaultVal
	}
	return time.Duration(n) * unit
}

// getFloat retrieves a numeric value or returns the default.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if v, ok := s.configStore.GetFloat(key); ok {
		return v
	}
	return defaultVal
}
