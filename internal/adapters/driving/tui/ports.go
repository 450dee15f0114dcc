// Package tui provides an interactive terminal user interface for sercha-finder.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/sercha-finder/internal/core/domain"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search queries the remote search service.
	Search driving.SearchService

	// Summary fetches summaries of selected results.
	Summary driving.SummaryService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService

	// Reloads signals that settings changed on disk. Optional.
	Reloads <-chan struct{}

	// OnSettingsChanged is called with the effective settings after a reload
	// or a save, so callers can reconfigure the adapters behind the services.
	OnSettingsChanged func(*domain.AppSettings)
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	summary driving.SummaryService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Search:   search,
		Summary:  summary,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Summary == nil {
		return ErrMissingSummaryService
	}
	return nil
}
