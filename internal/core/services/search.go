package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-finder/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService forwards queries to the remote search service.
type SearchService struct {
	client driven.SearchClient
}

// NewSearchService creates a new search service.
func NewSearchService(client driven.SearchClient) *SearchService {
	return &SearchService{client: client}
}

// Search queries the remote search service.
// Blank queries return no results without issuing a request.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if strings.TrimSpace(query) == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	if s.client == nil {
		return nil, domain.ErrSearchUnavailable
	}

	results, err := s.client.Search(ctx, query)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	logger.Info("Results: %d", len(results))
	return results, nil
}
