package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

// excerptLength matches the excerpt shown in the result dropdown.
const excerptLength = 150

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find documents"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (0 returns all)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Path      string  `json:"path"`
	Extension string  `json:"extension,omitempty"`
	Score     float64 `json:"score"`
	Relevance int     `json:"relevance"`
	Excerpt   string  `json:"excerpt,omitempty"`
	Text      string  `json:"text,omitempty"`
}

// SummarizeInput is the input schema for the summarize tool.
type SummarizeInput struct {
	Text string `json:"text" jsonschema:"the full document text to summarise"`
	Name string `json:"name,omitempty" jsonschema:"the document's file name, echoed back in the result"`
}

// SummarizeOutput is the output schema for the summarize tool.
type SummarizeOutput struct {
	FileName string `json:"file_name,omitempty"`
	Summary  string `json:"summary"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the document index and return ranked results with their text",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize",
		Description: "Generate a short summary of a document's text",
	}, s.handleSummarize)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	if input.Limit > 0 && len(results) > input.Limit {
		results = results[:input.Limit]
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = toResultOutput(&results[i])
	}

	return nil, output, nil
}

func toResultOutput(r *domain.SearchResult) SearchResultOutput {
	return SearchResultOutput{
		ID:        r.ID,
		Name:      r.Payload.Name,
		Path:      r.Payload.Path,
		Extension: r.Payload.Extension,
		Score:     r.Score,
		Relevance: r.Relevance(),
		Excerpt:   r.Payload.Excerpt(excerptLength),
		Text:      r.Payload.Text,
	}
}

// handleSummarize handles the summarize tool invocation.
// Remote failures are reported with the service's own message.
func (s *Server) handleSummarize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeInput,
) (*mcp.CallToolResult, SummarizeOutput, error) {
	result := &domain.SearchResult{
		Payload: domain.DocumentMetadata{Name: input.Name, Text: input.Text},
	}

	summary, err := s.ports.Summary.Summarize(ctx, result)
	if err != nil {
		return nil, SummarizeOutput{}, errors.New(domain.UserMessage(err))
	}

	return nil, SummarizeOutput{FileName: summary.FileName, Summary: summary.Text}, nil
}
