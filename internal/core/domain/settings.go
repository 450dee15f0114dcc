package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Default setting values.
const (
	DefaultBaseURL   = "http://127.0.0.1:8000"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10.0
	DefaultDebounce  = 300 * time.Millisecond
)

// APISettings holds the remote search service endpoint configuration.
type APISettings struct {
	// BaseURL is the root URL serving /search and /summarize.
	BaseURL string

	// Timeout bounds a single request.
	Timeout time.Duration

	// RateLimit caps outgoing requests per second. Zero disables the limit.
	RateLimit float64
}

// SearchSettings holds search-as-you-type behaviour configuration.
type SearchSettings struct {
	// Debounce is the quiet interval after the last keystroke before a search is issued.
	Debounce time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	API    APISettings
	Search SearchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultTimeout,
			RateLimit: DefaultRateLimit,
		},
		Search: SearchSettings{
			Debounce: DefaultDebounce,
		},
	}
}

// Validate checks the settings are usable.
func (s AppSettings) Validate() error {
	u, err := url.Parse(s.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL %q must be an absolute URL", ErrInvalidInput, s.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: base URL scheme %q is not supported", ErrInvalidInput, u.Scheme)
	}
	if s.API.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidInput)
	}
	if s.API.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidInput)
	}
	if s.Search.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", ErrInvalidInput)
	}
	return nil
}
