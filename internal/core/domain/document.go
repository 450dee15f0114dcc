package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// PathSeparator joins directory hierarchy segments for display.
const PathSeparator = " / "

// DocumentMetadata is the payload attached to a search result.
// It is opaque display data; only the optional fields are null-checked.
type DocumentMetadata struct {
	// Path is the absolute location of the file.
	Path string `json:"path"`

	// Name is the file name.
	Name string `json:"name"`

	// Directory is the containing directory.
	Directory string `json:"directory"`

	// DirectoryHierarchy holds the ordered path segments of Directory.
	DirectoryHierarchy []string `json:"directory_hierarchy"`

	// Size is pre-formatted by the service (e.g. "12.4 KB").
	Size string `json:"size"`

	Author *string `json:"author"`

	DateCreated  string `json:"date_created"`
	Year         int    `json:"year"`
	Month        string `json:"month"`
	LastModified string `json:"last_modified"`
	LastAccessed string `json:"last_accessed"`

	// Extension is the file extension including the leading dot.
	Extension string `json:"extension"`

	DocumentType   *string `json:"document_type"`
	Status         *string `json:"status"`
	Classification *string `json:"classification"`
	Department     *string `json:"department"`
	Language       *string `json:"language"`

	// Text is the full extracted body of the document.
	Text string `json:"text"`
}

// Excerpt returns the first n characters of the document text.
func (m DocumentMetadata) Excerpt(n int) string {
	if n <= 0 || utf8.RuneCountInString(m.Text) <= n {
		return m.Text
	}
	runes := []rune(m.Text)
	return string(runes[:n])
}

// JoinedPath returns the directory hierarchy joined for display.
func (m DocumentMetadata) JoinedPath() string {
	return strings.Join(m.DirectoryHierarchy, PathSeparator)
}

// AuthorLabel returns the author, or an empty string when unknown.
func (m DocumentMetadata) AuthorLabel() string {
	return deref(m.Author)
}

// CreatedLabel formats DateCreated as "Jan 2, 2006".
// Values that cannot be parsed are returned unchanged.
func (m DocumentMetadata) CreatedLabel() string {
	return FormatDate(m.DateCreated)
}

// dateLayouts are the timestamp shapes emitted by the search service.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// FormatDate renders an ISO-ish timestamp as a short human date.
func FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return value
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
