// Package list provides the dropdown result list for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

const (
	// RowHeight is the number of lines every result row occupies.
	RowHeight = 4

	// ExcerptLength is the number of characters of text shown per row.
	ExcerptLength = 150

	// LoadingText is shown while a search is in flight.
	LoadingText = "Loading..."

	// NoResultsText is shown when a non-blank query matched nothing.
	NoResultsText = "No results found"
)

// ResultList displays search results with a selection cursor.
//
// The cursor is -1 (nothing highlighted) or a valid index into the
// results. Replacing the results resets it.
type ResultList struct {
	results []domain.SearchResult
	cursor  int
	offset  int
	loading bool
	query   string
	styles  *styles.Styles
	width   int
	height  int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		cursor: -1,
		styles: s,
		width:  80,
		height: RowHeight * 5,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// View renders the visible rows, or the loading and empty states.
func (r *ResultList) View() string {
	if r.loading {
		return r.styles.Muted.Render(LoadingText)
	}
	if len(r.results) == 0 {
		if strings.TrimSpace(r.query) != "" {
			return r.styles.Muted.Render(NoResultsText)
		}
		return ""
	}

	start, end := r.visibleRange()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, r.renderRow(i, &r.results[i]))
	}
	return strings.Join(rows, "\n")
}

// renderRow formats one result as RowHeight lines.
func (r *ResultList) renderRow(index int, result *domain.SearchResult) string {
	p := result.Payload
	selected := index == r.cursor

	indicator := "  "
	if selected {
		indicator = "> "
	}

	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	var header string
	if selected {
		header = r.styles.Selected.Render(indicator+name) + " " +
			r.styles.Extension.Render(p.Extension) + "  " +
			r.styles.Relevance.Render(fmt.Sprintf("%d%%", result.Relevance()))
	} else {
		header = r.styles.Normal.Render(indicator+name) + " " +
			r.styles.Extension.Render(p.Extension) + "  " +
			r.styles.Muted.Render(fmt.Sprintf("%d%%", result.Relevance()))
	}

	meta := make([]string, 0, 3)
	if author := p.AuthorLabel(); author != "" {
		meta = append(meta, "Author: "+author)
	}
	if created := p.CreatedLabel(); created != "" {
		meta = append(meta, "Created: "+created)
	}
	meta = append(meta, "Size: "+p.Size)

	excerpt := strings.Join(strings.Fields(p.Excerpt(ExcerptLength)), " ") + "..."

	lines := []string{
		header,
		r.styles.Muted.Render("    " + strings.Join(meta, "  ")),
		r.styles.Normal.Render("    " + excerpt),
		r.styles.Muted.Render("    " + p.JoinedPath()),
	}

	clip := lipgloss.NewStyle().MaxWidth(r.width)
	for i, l := range lines {
		lines[i] = clip.Render(l)
	}
	return strings.Join(lines, "\n")
}

// visibleRange returns the half-open index range of rendered rows.
func (r *ResultList) visibleRange() (int, int) {
	end := r.offset + r.capacity()
	if end > len(r.results) {
		end = len(r.results)
	}
	return r.offset, end
}

// capacity is the number of rows that fit in the height.
func (r *ResultList) capacity() int {
	n := r.height / RowHeight
	if n < 1 {
		return 1
	}
	return n
}

// scroll keeps the cursor inside the visible window.
func (r *ResultList) scroll() {
	if r.cursor < 0 {
		return
	}
	if r.cursor < r.offset {
		r.offset = r.cursor
	}
	if c := r.capacity(); r.cursor >= r.offset+c {
		r.offset = r.cursor - c + 1
	}
}

// SetResults replaces the results wholesale and resets the cursor:
// 0 for a non-empty list, -1 for an empty one.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.offset = 0
	r.loading = false
	if len(results) == 0 {
		r.cursor = -1
		return
	}
	r.cursor = 0
}

// Clear drops all results and the cursor.
func (r *ResultList) Clear() {
	r.SetResults(nil)
}

// SetLoading marks a search as in flight.
func (r *ResultList) SetLoading(loading bool) {
	r.loading = loading
}

// Loading reports whether a search is in flight.
func (r *ResultList) Loading() bool {
	return r.loading
}

// SetQuery records the query the results belong to, for the empty state.
func (r *ResultList) SetQuery(query string) {
	r.query = query
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Cursor returns the highlighted index, or -1.
func (r *ResultList) Cursor() int {
	return r.cursor
}

// SetCursor highlights index when it is valid; -1 clears the highlight.
func (r *ResultList) SetCursor(index int) {
	if index == -1 || (index >= 0 && index < len(r.results)) {
		r.cursor = index
		r.scroll()
	}
}

// SelectedResult returns the highlighted result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if r.cursor < 0 || r.cursor >= len(r.results) {
		return nil
	}
	return &r.results[r.cursor]
}

// MoveUp moves the cursor to max(cursor-1, 0). It never wraps.
func (r *ResultList) MoveUp() {
	if len(r.results) == 0 {
		return
	}
	r.cursor = max(r.cursor-1, 0)
	r.scroll()
}

// MoveDown moves the cursor to min(cursor+1, n-1). It never wraps.
func (r *ResultList) MoveDown() {
	if len(r.results) == 0 {
		return
	}
	r.cursor = min(r.cursor+1, len(r.results)-1)
	r.scroll()
}

// RowAt maps a line offset within the rendered list to a result index.
// It returns -1 when the line is outside every row.
func (r *ResultList) RowAt(line int) int {
	if line < 0 || r.loading || len(r.results) == 0 {
		return -1
	}
	idx := r.offset + line/RowHeight
	start, end := r.visibleRange()
	if idx < start || idx >= end {
		return -1
	}
	return idx
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
	r.scroll()
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
