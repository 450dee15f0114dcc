package driven

import (
	"context"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

// SearchClient queries the remote search service.
// Ranking and indexing happen behind this port.
type SearchClient interface {
	// Search returns the ranked results for a query.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// Summarizer asks the remote service to summarise document text.
type Summarizer interface {
	// Summarize returns a generated summary of text.
	Summarize(ctx context.Context, text string) (string, error)
}
