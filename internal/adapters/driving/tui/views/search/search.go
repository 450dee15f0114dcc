// Package search provides the search-as-you-type view for the TUI:
// a query box, a dropdown of ranked results and a summary panel.
package search

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/components/summary"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-finder/internal/core/domain"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-finder/internal/logger"
)

// headerLines is the title line plus the blank line under it.
const headerLines = 2

// View represents the search view with input, dropdown, summary panel and status bar.
//
// Every keystroke that changes the query restarts the debounce timer.
// Timers, searches and summaries each carry a sequence number and only
// the latest of each kind is applied; older ones are dropped.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	panel     *summary.Panel
	statusbar *status.Bar

	searchService  driving.SearchService
	summaryService driving.SummaryService
	ctx            context.Context
	debounce       time.Duration

	debounceSeq   uint64
	searchSeq     uint64
	summarySeq    uint64
	cancelSearch  context.CancelFunc
	cancelSummary context.CancelFunc

	open   bool
	width  int
	height int
	ready  bool
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	summaryService driving.SummaryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		input:          input.NewSearchInput(s),
		list:           list.NewResultList(s),
		panel:          summary.NewPanel(s),
		statusbar:      status.NewBar(s, km),
		searchService:  searchService,
		summaryService: summaryService,
		ctx:            context.Background(),
		debounce:       domain.DefaultDebounce,
		width:          80,
		height:         24,
	}
}

// WithContext sets the context requests are derived from.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v, v.handleKeyMsg(msg)

	case tea.MouseMsg:
		return v, v.handleMouseMsg(msg)

	case messages.DebounceFired:
		return v, v.handleDebounceFired(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ResultSelected:
		return v, v.commit(msg.Index)

	case messages.SummaryCompleted:
		v.handleSummaryCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

// navigable reports whether Up, Down, Enter and Tab act on the dropdown.
func (v *View) navigable() bool {
	return v.open && !v.list.Loading() && !v.list.IsEmpty()
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Close):
		v.list.SetCursor(-1)
		if v.open {
			v.open = false
			return nil
		}
		v.clearSummary()
		return nil

	case keymap.Matches(k, v.keymap.Up):
		if v.navigable() {
			v.list.MoveUp()
		}
		return nil

	case keymap.Matches(k, v.keymap.Down):
		if v.navigable() {
			v.list.MoveDown()
		} else if !v.open && strings.TrimSpace(v.input.Value()) != "" {
			v.open = true
		}
		return nil

	case keymap.Matches(k, v.keymap.Select):
		if v.navigable() && v.list.Cursor() >= 0 {
			return v.commit(v.list.Cursor())
		}
		return nil

	case keymap.Matches(k, v.keymap.Complete):
		if !v.navigable() {
			return nil
		}
		result := v.list.SelectedResult()
		if result == nil {
			return nil
		}
		v.input.SetValue(result.Payload.Name)
		v.open = false
		return v.queryChanged()
	}

	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if !changed {
		return cmd
	}
	return tea.Batch(cmd, v.queryChanged())
}

// handleMouseMsg commits the row under a left click.
func (v *View) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if !v.open {
		return nil
	}
	row := v.list.RowAt(msg.Y - v.listTop())
	if row < 0 {
		return nil
	}
	return v.commit(row)
}

// listTop is the screen line of the first dropdown row.
func (v *View) listTop() int {
	return headerLines + v.input.Height() + v.styles.Dropdown.GetBorderTopSize()
}

// queryChanged restarts the debounce timer for the current query.
func (v *View) queryChanged() tea.Cmd {
	v.list.SetQuery(v.input.Value())
	v.debounceSeq++
	seq := v.debounceSeq
	return tea.Tick(v.debounce, func(time.Time) tea.Msg {
		return messages.DebounceFired{Seq: seq}
	})
}

// handleDebounceFired issues the search for the settled query.
func (v *View) handleDebounceFired(msg messages.DebounceFired) tea.Cmd {
	if msg.Seq != v.debounceSeq {
		return nil
	}

	v.stopSearch()
	query := v.input.Value()

	if strings.TrimSpace(query) == "" {
		v.list.Clear()
		v.open = false
		v.statusbar.Clear()
		return nil
	}

	ctx, cancel := context.WithCancel(v.ctx)
	v.cancelSearch = cancel
	v.list.SetLoading(true)
	v.open = true
	v.statusbar.SetState(status.StateSearching)

	return performSearch(ctx, v.searchService, v.searchSeq, query)
}

// stopSearch cancels any in-flight search and invalidates its response.
func (v *View) stopSearch() {
	if v.cancelSearch != nil {
		v.cancelSearch()
		v.cancelSearch = nil
	}
	v.searchSeq++
}

// performSearch runs a search off the event loop.
func performSearch(ctx context.Context, svc driving.SearchService, seq uint64, query string) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return messages.SearchCompleted{Seq: seq, Query: query, Err: ErrNoSearchService}
		}
		results, err := svc.Search(ctx, query)
		return messages.SearchCompleted{Seq: seq, Query: query, Results: results, Err: err}
	}
}

// handleSearchCompleted replaces the results with a search response.
// A failed search clears the list; it is logged, not shown.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Seq != v.searchSeq {
		logger.Debug("Dropping stale search response for %q", msg.Query)
		return
	}
	if v.cancelSearch != nil {
		v.cancelSearch()
		v.cancelSearch = nil
	}

	if msg.Err != nil {
		if !errors.Is(msg.Err, context.Canceled) {
			logger.Warn("Search for %q failed: %v", msg.Query, msg.Err)
		}
		v.list.Clear()
		v.refreshStatus()
		return
	}

	v.list.SetResults(msg.Results)
	v.refreshStatus()
}

// commit selects the result at index and requests its summary.
func (v *View) commit(index int) tea.Cmd {
	v.list.SetCursor(index)
	selected := v.list.SelectedResult()
	if selected == nil || v.list.Cursor() != index {
		return nil
	}
	result := *selected

	v.stopSummary()
	ctx, cancel := context.WithCancel(v.ctx)
	v.cancelSummary = cancel
	v.panel.SetState(domain.SummaryLoadingState(result.Payload.Name))
	v.statusbar.SetState(status.StateSummarising)

	return performSummary(ctx, v.summaryService, v.summarySeq, result)
}

// stopSummary cancels any in-flight summary and invalidates its response.
func (v *View) stopSummary() {
	if v.cancelSummary != nil {
		v.cancelSummary()
		v.cancelSummary = nil
	}
	v.summarySeq++
}

// performSummary requests a summary off the event loop.
func performSummary(ctx context.Context, svc driving.SummaryService, seq uint64, result domain.SearchResult) tea.Cmd {
	name := result.Payload.Name
	return func() tea.Msg {
		if svc == nil {
			return messages.SummaryCompleted{Seq: seq, FileName: name, Err: ErrNoSummaryService}
		}
		s, err := svc.Summarize(ctx, &result)
		if err != nil {
			return messages.SummaryCompleted{Seq: seq, FileName: name, Err: err}
		}
		return messages.SummaryCompleted{Seq: seq, FileName: s.FileName, Summary: s.Text}
	}
}

// handleSummaryCompleted shows a summary response in the panel.
func (v *View) handleSummaryCompleted(msg messages.SummaryCompleted) {
	if msg.Seq != v.summarySeq {
		logger.Debug("Dropping stale summary response for %q", msg.FileName)
		return
	}
	if v.cancelSummary != nil {
		v.cancelSummary()
		v.cancelSummary = nil
	}

	if msg.Err != nil {
		v.panel.SetState(domain.SummaryErrorState(msg.FileName, domain.UserMessage(msg.Err)))
	} else {
		v.panel.SetState(domain.SummaryContentState(msg.FileName, msg.Summary))
	}
	v.refreshStatus()
}

// clearSummary hides the panel and drops any pending summary.
func (v *View) clearSummary() {
	if !v.panel.Visible() {
		return
	}
	v.stopSummary()
	v.panel.Clear()
	v.refreshStatus()
}

// refreshStatus derives the status bar from the current state.
func (v *View) refreshStatus() {
	switch {
	case v.list.Loading():
		v.statusbar.SetState(status.StateSearching)
	case v.panel.State().Status == domain.SummaryLoading:
		v.statusbar.SetState(status.StateSummarising)
	case !v.list.IsEmpty():
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetResultCount(v.list.Count())
	default:
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetResultCount(0)
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Sercha Finder"), "", v.input.View())

	if v.open {
		if rows := v.list.View(); rows != "" {
			inner := v.width - v.styles.Dropdown.GetHorizontalBorderSize()
			sections = append(sections, v.styles.Dropdown.Width(inner).Render(rows))
		}
	}

	if v.panel.Visible() {
		sections = append(sections, "", v.panel.View())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// header, input, dropdown border, status bar and room for the panel
	rows := height - headerLines - 3 - 2 - 2 - 10
	if rows < list.RowHeight {
		rows = list.RowHeight
	}

	v.input.SetWidth(width)
	v.list.SetDimensions(width-v.styles.Dropdown.GetHorizontalBorderSize(), rows)
	v.panel.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// SetDebounce changes the debounce window. Non-positive values are ignored.
func (v *View) SetDebounce(d time.Duration) {
	if d > 0 {
		v.debounce = d
	}
}

// Debounce returns the debounce window.
func (v *View) Debounce() time.Duration {
	return v.debounce
}

// SetEndpoint shows the search service address in the status bar.
func (v *View) SetEndpoint(endpoint string) {
	v.statusbar.SetEndpoint(endpoint)
}

// SetStatusMessage shows a transient message in the status bar.
func (v *View) SetStatusMessage(msg string) {
	v.statusbar.SetMessage(msg)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the current search results.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// Cursor returns the highlighted result index, or -1.
func (v *View) Cursor() int {
	return v.list.Cursor()
}

// SelectedResult returns the highlighted result, or nil.
func (v *View) SelectedResult() *domain.SearchResult {
	return v.list.SelectedResult()
}

// DropdownOpen reports whether the result dropdown is shown.
func (v *View) DropdownOpen() bool {
	return v.open
}

// Searching reports whether a search is in flight.
func (v *View) Searching() bool {
	return v.list.Loading()
}

// Summary returns the summary panel state.
func (v *View) Summary() domain.SummaryState {
	return v.panel.State()
}

// Reset returns the view to an empty query, dropping pending work.
func (v *View) Reset() {
	v.Close()
	v.input.Reset()
	v.list.SetQuery("")
	v.list.Clear()
	v.panel.Clear()
	v.open = false
	v.statusbar.Clear()
}

// Close cancels pending timers and requests. Responses that arrive
// afterwards are ignored.
func (v *View) Close() {
	v.debounceSeq++
	v.stopSearch()
	v.stopSummary()
}
