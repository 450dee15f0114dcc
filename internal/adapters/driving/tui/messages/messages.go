// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

// DebounceFired is sent when a debounce timer expires.
// Only the timer whose Seq matches the view's latest keystroke is honoured.
type DebounceFired struct {
	Seq uint64
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Seq     uint64
	Query   string
	Results []domain.SearchResult
	Err     error
}

// SummaryCompleted carries a summary (or its failure) back to the model.
type SummaryCompleted struct {
	Seq      uint64
	FileName string
	Summary  string
	Err      error
}

// ResultSelected is sent when a result is committed with Enter or a click.
type ResultSelected struct {
	Index int
}

// SettingsReloaded is sent when the config file changed on disk.
type SettingsReloaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsLoaded carries the editable settings, in display order.
type SettingsLoaded struct {
	Keys   []string
	Values map[string]string
	Err    error
}

// SettingsSaved signals a setting was written.
type SettingsSaved struct {
	Key string
	Err error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the search box, dropdown and summary panel.
	ViewSearch ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewSettings is the settings editor.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewHelp:
		return "help"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
