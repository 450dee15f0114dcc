package mcp

import (
	"context"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
	queries []string
}

func (m *mockSearchService) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	return m.results, m.err
}

// mockSummaryService is a mock implementation of driving.SummaryService.
type mockSummaryService struct {
	summary *domain.Summary
	err     error
	texts   []string
}

func (m *mockSummaryService) Summarize(_ context.Context, result *domain.SearchResult) (*domain.Summary, error) {
	m.texts = append(m.texts, result.Payload.Text)
	if m.err != nil {
		return nil, m.err
	}
	if m.summary != nil {
		return m.summary, nil
	}
	return &domain.Summary{FileName: result.Payload.Name, Text: "short summary"}, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	values map[string]string
	err    error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	return &s, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) Set(key, value string) error {
	m.values[key] = value
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return []string{"api.base_url", "search.debounce_ms"}
}

func (m *mockSettingsService) Value(key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.values[key], nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) Path() string {
	return "/home/user/.sercha-finder/config.toml"
}

func newServer(search *mockSearchService, summary *mockSummaryService) *Server {
	s, err := NewServer(&Ports{Search: search, Summary: summary})
	if err != nil {
		panic(err)
	}
	return s
}

func testResults() []domain.SearchResult {
	author := "Finance Team"
	return []domain.SearchResult{
		{
			ID:    "doc-1",
			Score: 0.934,
			Payload: domain.DocumentMetadata{
				Path:      "/docs/finance/report-2023.pdf",
				Name:      "report-2023.pdf",
				Extension: ".pdf",
				Author:    &author,
				Text:      "Quarterly revenue grew in every region.",
			},
		},
		{
			ID:    "doc-2",
			Score: 0.418,
			Payload: domain.DocumentMetadata{
				Path:      "/docs/report-notes.txt",
				Name:      "report-notes.txt",
				Extension: ".txt",
				Text:      "Notes on the report",
			},
		},
	}
}
