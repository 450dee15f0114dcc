// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/styles"
)

// State represents the current activity for display.
type State string

const (
	StateReady       State = "ready"
	StateSearching   State = "searching"
	StateResults     State = "results"
	StateSummarising State = "summarising"
	StateError       State = "error"
)

// Bar displays the current activity, the service endpoint and key hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	endpoint    string
	resultCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) -
		s.styles.StatusBar.GetHorizontalPadding()
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Render(left + strings.Repeat(" ", padding) + right)
}

// renderLeft renders the activity, followed by any message.
func (s *Bar) renderLeft() string {
	var left string
	switch s.state {
	case StateSearching:
		left = s.styles.Muted.Render("Searching...")
	case StateSummarising:
		left = s.styles.Muted.Render("Summarising...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render("Error: " + s.message)
		}
		return s.styles.Error.Render("Error")
	case StateResults:
		left = s.styles.Normal.Render(fmt.Sprintf("%d results", s.resultCount))
	default:
		left = s.styles.Muted.Render("Ready")
	}

	if s.endpoint != "" {
		left += s.styles.Muted.Render(" · " + s.endpoint)
	}
	if s.message != "" {
		left += s.styles.Muted.Render(" · " + s.message)
	}
	return left
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateResults && s.resultCount > 0 {
		bindings = s.keymap.ResultsHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a transient message shown after the state.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetEndpoint sets the search service address shown in the bar.
func (s *Bar) SetEndpoint(endpoint string) {
	s.endpoint = endpoint
}

// Endpoint returns the displayed search service address.
func (s *Bar) Endpoint() string {
	return s.endpoint
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// ResultCount returns the current result count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its default state. The endpoint is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.resultCount = 0
}
