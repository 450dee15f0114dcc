// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/styles"
)

// Placeholder is shown while the search box is empty.
const Placeholder = "Search..."

// SearchInput wraps a bubbles textinput with search-specific styling.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewSearchInput creates a search input that always holds focus.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256

	in := &SearchInput{
		textinput: ti,
		styles:    s,
	}
	in.SetWidth(50)
	return in
}

// Init initialises the search input.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
// The boolean reports whether the value changed.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd, bool) {
	before := s.textinput.Value()
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd, s.textinput.Value() != before
}

// View renders the search input.
func (s *SearchInput) View() string {
	return s.styles.InputField.Width(s.width - s.styles.InputField.GetHorizontalBorderSize()).
		Render(s.textinput.View())
}

// Height returns the number of lines View occupies.
func (s *SearchInput) Height() int {
	return lipgloss.Height(s.View())
}

// Value returns the current input value.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value and moves the cursor to the end.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
	s.textinput.CursorEnd()
}

// SetWidth sets the outer width of the input box.
func (s *SearchInput) SetWidth(width int) {
	if width < 24 {
		width = 24
	}
	s.width = width
	// border, padding, prompt and cursor cell, plus one spare column
	s.textinput.Width = width - s.styles.InputField.GetHorizontalFrameSize() - lipgloss.Width(s.textinput.Prompt) - 2
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}
