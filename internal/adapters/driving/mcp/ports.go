package mcp

import (
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search queries the remote search service.
	Search driving.SearchService

	// Summary produces summaries of search results.
	Summary driving.SummaryService

	// Settings exposes the effective configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Summary == nil {
		return ErrMissingSummaryService
	}
	return nil
}
