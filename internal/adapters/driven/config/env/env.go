// Package env reads settings overrides from the process environment.
// A .env file in the working directory is loaded first when present.
package env

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driven"
)

// Prefix namespaces the environment variables, e.g. SERCHA_FINDER_API_URL.
const Prefix = "SERCHA_FINDER"

// Ensure Overrides implements the interface.
var _ driven.SettingsOverlay = (*Overrides)(nil)

// Overrides holds settings supplied through the environment.
// Zero values mean "not set".
type Overrides struct {
	APIURL    string        `envconfig:"API_URL"`
	Timeout   time.Duration `envconfig:"TIMEOUT"`
	RateLimit *float64      `envconfig:"RATE_LIMIT"`
	Debounce  time.Duration `envconfig:"DEBOUNCE"`
}

// Load reads overrides from the environment, loading .env files first.
// Missing .env files are not an error.
func Load(filenames ...string) (*Overrides, error) {
	_ = godotenv.Load(filenames...)

	var o Overrides
	if err := envconfig.Process(Prefix, &o); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &o, nil
}

// Apply mutates settings with any overrides that were set.
func (o *Overrides) Apply(settings *domain.AppSettings) {
	if o == nil {
		return
	}
	if o.APIURL != "" {
		settings.API.BaseURL = strings.TrimRight(o.APIURL, "/")
	}
	if o.Timeout > 0 {
		settings.API.Timeout = o.Timeout
	}
	if o.RateLimit != nil {
		settings.API.RateLimit = *o.RateLimit
	}
	if o.Debounce > 0 {
		settings.Search.Debounce = o.Debounce
	}
}
