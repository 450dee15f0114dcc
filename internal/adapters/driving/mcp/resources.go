package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for sercha-finder resources.
	uriScheme = "finder://"

	searchPrefix = uriScheme + "search/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the effective configuration.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Effective client settings, including the search service URL",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	// Template for search results.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: searchPrefix + "{query}",
		Name:        "search-results",
		Description: "Ranked search results for a URL-escaped query",
		MIMEType:    "application/json",
	}, s.handleSearchResource)
}

// handleSettingsResource returns every settings key with its effective value.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	values := make(map[string]string)
	for _, key := range s.ports.Settings.Keys() {
		val, err := s.ports.Settings.Value(key)
		if err != nil {
			return nil, fmt.Errorf("reading setting %s: %w", key, err)
		}
		values[key] = val
	}
	values["path"] = s.ports.Settings.Path()

	return jsonResource(req.Params.URI, values)
}

// handleSearchResource runs the query named in the URI.
func (s *Server) handleSearchResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	query := extractQuery(req.Params.URI)
	if query == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	results, err := s.ports.Search.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}

	out := make([]SearchResultOutput, len(results))
	for i := range results {
		out[i] = toResultOutput(&results[i])
		// Full text is available through the search tool.
		out[i].Text = ""
	}

	return jsonResource(req.Params.URI, out)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractQuery extracts and unescapes the query from finder://search/{query}.
// Returns "" for other URIs or blank queries.
func extractQuery(uri string) string {
	if !strings.HasPrefix(uri, searchPrefix) {
		return ""
	}
	query, err := url.PathUnescape(strings.TrimPrefix(uri, searchPrefix))
	if err != nil {
		return ""
	}
	if strings.TrimSpace(query) == "" {
		return ""
	}
	return query
}
