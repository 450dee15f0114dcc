package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDocumentMetadata_Excerpt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		n        int
		expected string
	}{
		{name: "shorter than limit", text: "short", n: 150, expected: "short"},
		{name: "exactly at limit", text: "abcde", n: 5, expected: "abcde"},
		{name: "truncated", text: "abcdefgh", n: 3, expected: "abc"},
		{name: "multibyte runes are not split", text: "héllo wörld", n: 4, expected: "héll"},
		{name: "zero limit returns full text", text: "abc", n: 0, expected: "abc"},
		{name: "empty text", text: "", n: 10, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DocumentMetadata{Text: tt.text}
			assert.Equal(t, tt.expected, m.Excerpt(tt.n))
		})
	}
}

func TestDocumentMetadata_JoinedPath(t *testing.T) {
	m := DocumentMetadata{DirectoryHierarchy: []string{"home", "docs", "reports"}}
	assert.Equal(t, "home / docs / reports", m.JoinedPath())

	assert.Equal(t, "", DocumentMetadata{}.JoinedPath())
}

func TestDocumentMetadata_AuthorLabel(t *testing.T) {
	assert.Equal(t, "", DocumentMetadata{}.AuthorLabel())
	assert.Equal(t, "Ada", DocumentMetadata{Author: strPtr("Ada")}.AuthorLabel())
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "   ", expected: ""},
		{input: "2024-03-05T10:20:30Z", expected: "Mar 5, 2024"},
		{input: "2024-03-05T10:20:30.123456", expected: "Mar 5, 2024"},
		{input: "2024-03-05T10:20:30", expected: "Mar 5, 2024"},
		{input: "2024-03-05 10:20:30", expected: "Mar 5, 2024"},
		{input: "2024-12-31", expected: "Dec 31, 2024"},
		{input: "yesterday", expected: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.input))
		})
	}
}

func TestDocumentMetadata_CreatedLabel(t *testing.T) {
	m := DocumentMetadata{DateCreated: "2023-01-15T08:00:00"}
	assert.Equal(t, "Jan 15, 2023", m.CreatedLabel())
}
