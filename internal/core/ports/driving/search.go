package driving

import (
	"context"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search queries the remote search service.
	// Blank queries return no results without issuing a request.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// SummaryService produces summaries of selected search results.
type SummaryService interface {
	// Summarize requests a summary of the result's full text.
	Summarize(ctx context.Context, result *domain.SearchResult) (*domain.Summary, error)
}
