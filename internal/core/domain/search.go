package domain

import "math"

// SearchResult represents a single match returned by the search service.
// Results are immutable once received and replaced wholesale per response.
type SearchResult struct {
	// ID is unique within a response but not globally stable.
	ID string `json:"id"`

	// Score is the relevance score in [0,1].
	Score float64 `json:"score"`

	// Payload holds the matched file's metadata.
	Payload DocumentMetadata `json:"payload"`
}

// Relevance returns the score as a rounded percentage in [0,100].
func (r SearchResult) Relevance() int {
	pct := int(math.Round(r.Score * 100))
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// SearchResponse is the body returned by the search endpoint.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
