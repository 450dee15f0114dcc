// Package mcp provides an MCP (Model Context Protocol) server adapter for sercha-finder.
// It lets AI assistants search the remote document index and request summaries.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingSummaryService is returned when the summary service is not provided.
var ErrMissingSummaryService = errors.New("mcp: summary service is required")
