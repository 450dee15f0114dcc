// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the finder.
type Theme struct {
	// Primary is the main accent colour, used for the cursor row.
	Primary lipgloss.Color

	// Secondary marks file extensions and panel titles.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for metadata, excerpts and paths.
	Muted lipgloss.Color

	// Relevance colours the match percentage.
	Relevance lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour of the input, dropdown and panel.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"), // Blue
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#E2E8F0"), // Slate
		Muted:      lipgloss.Color("#64748B"), // Grey
		Relevance:  lipgloss.Color("#A6E3A1"), // Green
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#475569"),
		Bar:        lipgloss.Color("#0F172A"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style

	// Selected highlights the row under the cursor.
	Selected lipgloss.Style

	// Extension renders the file extension badge in a row.
	Extension lipgloss.Style

	// Relevance renders the match percentage in a row.
	Relevance lipgloss.Style

	// InputField wraps the search box.
	InputField lipgloss.Style

	// Dropdown wraps the result list.
	Dropdown lipgloss.Style

	// Panel wraps the summary panel.
	Panel lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Extension: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Relevance: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Relevance),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Dropdown: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
