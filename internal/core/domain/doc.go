// Package domain defines the core business entities for sercha-finder.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchResult: A scored match returned by the remote search service
//   - DocumentMetadata: The display payload attached to a result
//   - SummaryState: The status of an on-demand summary request
//   - AppSettings: Endpoint and interaction settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
