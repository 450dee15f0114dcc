package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

// executeSearch runs the search command and resets its flags afterwards.
func executeSearch(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"search"}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
		searchJSON = false
		searchLimit = 10
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Short(t *testing.T) {
	assert.Equal(t, "Search the document index", searchCmd.Short)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeSearch()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "10", flag.DefValue)
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeSearch("quarterly report")

	require.NoError(t, err)
	assert.Equal(t, []string{"quarterly report"}, ts.search.queries)
	assert.Contains(t, out, "Results:")
	assert.Contains(t, out, "[1] report-2023.pdf .pdf (93%)")
	assert.Contains(t, out, "[2] report-notes.txt .txt (42%)")
	assert.Contains(t, out, "Author: Finance Team | Created: Mar 15, 2023 | Size: 2 MB")
	assert.Contains(t, out, "Quarterly revenue grew in every region....")
	assert.Contains(t, out, "docs / finance")
}

func TestSearchCmd_ExecutesWithShortLimitFlag(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeSearch("-n", "1", "report")

	require.NoError(t, err)
	assert.Contains(t, out, "report-2023.pdf")
	assert.NotContains(t, out, "report-notes.txt")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeSearch("--json", "report")

	require.NoError(t, err)
	var decoded []domain.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "doc-1", decoded[0].ID)
	assert.Contains(t, out, `"payload"`)
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	searchService = nil

	_, err := executeSearch("test")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}

func TestSearchCmd_ServiceError(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.search.err = &domain.RemoteError{StatusCode: 503, Message: "index not ready"}

	_, err := executeSearch("test")

	require.Error(t, err)
	assert.Equal(t, "search failed: index not ready", err.Error())
}

func TestOutputSearchJSON_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchJSON(rootCmd, nil)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[]")
}

func TestOutputSearchTable_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchTable(rootCmd, []domain.SearchResult{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found")
}

func TestOutputSearchTable_MinimalResult(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	results := []domain.SearchResult{
		{ID: "doc-123", Score: 0.75, Payload: domain.DocumentMetadata{Name: "plain.md"}},
	}

	err := outputSearchTable(rootCmd, results)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "plain.md")
	assert.Contains(t, buf.String(), "(75%)")
	assert.NotContains(t, buf.String(), "Author:")
	assert.NotContains(t, buf.String(), "...")
}

func TestMetaLine(t *testing.T) {
	author := "Ada"
	tests := []struct {
		name     string
		meta     domain.DocumentMetadata
		expected string
	}{
		{name: "empty", meta: domain.DocumentMetadata{}, expected: ""},
		{name: "size only", meta: domain.DocumentMetadata{Size: "1 KB"}, expected: "Size: 1 KB"},
		{
			name:     "author and size",
			meta:     domain.DocumentMetadata{Author: &author, Size: "1 KB"},
			expected: "Author: Ada | Size: 1 KB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, metaLine(tt.meta))
		})
	}
}
