package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-finder/internal/logger"
)

// Ensure SummaryService implements the interface.
var _ driving.SummaryService = (*SummaryService)(nil)

// SummaryService requests summaries of search results.
// The summarizer is optional; without it every request fails with
// domain.ErrSummaryUnavailable.
type SummaryService struct {
	summarizer driven.Summarizer
}

// NewSummaryService creates a new summary service.
func NewSummaryService(summarizer driven.Summarizer) *SummaryService {
	return &SummaryService{summarizer: summarizer}
}

// Summarize requests a summary of the result's full text.
// The text is sent unchanged; a single attempt is made.
func (s *SummaryService) Summarize(ctx context.Context, result *domain.SearchResult) (*domain.Summary, error) {
	if result == nil {
		return nil, fmt.Errorf("summarise: %w", domain.ErrInvalidInput)
	}

	name := result.Payload.Name
	logger.Section("Summary")
	logger.Debug("Document: %q (%d chars)", name, len(result.Payload.Text))

	if s.summarizer == nil {
		return nil, domain.ErrSummaryUnavailable
	}

	text, err := s.summarizer.Summarize(ctx, result.Payload.Text)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Warn("Summary failed for %q: %v", name, err)
		}
		return nil, fmt.Errorf("summarise %s: %w", name, err)
	}

	return &domain.Summary{FileName: name, Text: text}, nil
}
