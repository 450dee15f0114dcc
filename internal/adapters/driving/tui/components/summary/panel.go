// Package summary provides the detail panel that shows a result's summary.
package summary

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

// LoadingText is shown while a summary is being generated.
const LoadingText = "Generating summary..."

// Panel renders a domain.SummaryState.
// It holds no state of its own beyond layout.
type Panel struct {
	state  domain.SummaryState
	styles *styles.Styles
	width  int
}

// NewPanel creates an idle summary panel.
func NewPanel(s *styles.Styles) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Panel{styles: s, width: 80}
}

// SetState replaces the displayed state.
func (p *Panel) SetState(state domain.SummaryState) {
	p.state = state
}

// State returns the displayed state.
func (p *Panel) State() domain.SummaryState {
	return p.state
}

// Clear returns the panel to idle.
func (p *Panel) Clear() {
	p.state = domain.SummaryState{}
}

// Visible reports whether the panel renders anything.
func (p *Panel) Visible() bool {
	return p.state.Status != domain.SummaryIdle
}

// SetWidth sets the outer width of the panel.
func (p *Panel) SetWidth(width int) {
	p.width = width
}

// View renders the panel, or an empty string when idle.
func (p *Panel) View() string {
	var title, body string

	switch p.state.Status {
	case domain.SummaryLoading:
		title = p.styles.Subtitle.Render(p.state.FileName)
		body = p.styles.Muted.Render(LoadingText)
	case domain.SummaryContent:
		title = p.styles.Subtitle.Render("Summary: " + p.state.FileName)
		body = p.styles.Normal.Render(p.state.Summary)
	case domain.SummaryError:
		title = p.styles.Error.Render("Summary failed: " + p.state.FileName)
		body = p.styles.Error.Render(p.state.Message)
	default:
		return ""
	}

	inner := p.width - p.styles.Panel.GetHorizontalBorderSize()
	if inner < 10 {
		inner = 10
	}
	return p.styles.Panel.Width(inner).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", body),
	)
}
