// Package settings provides the settings editor view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driving"
)

// errNoSettingsService is reported when the view has no service to talk to.
var errNoSettingsService = errors.New("settings service not available")

// Key constants for key handling.
const (
	keyUp    = "up"
	keyDown  = "down"
	keyEnter = "enter"
	keyEsc   = "esc"
)

// labels maps config keys to display names. Unknown keys show as-is.
var labels = map[string]string{
	"api.base_url":        "Search service URL",
	"api.timeout_seconds": "Request timeout (s)",
	"api.rate_limit":      "Rate limit (req/s, 0 = off)",
	"search.debounce_ms":  "Debounce (ms)",
}

// View is the settings editor view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	keys   []string
	values map[string]string
	err    error
	notice string

	selected int
	editing  bool
	input    textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.CharLimit = 256
	input.Width = 40

	return &View{
		styles:          s,
		settingsService: settingsService,
		input:           input,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return loadSettings(v.settingsService)
}

// loadSettings returns a command that reads every key's effective value.
func loadSettings(svc driving.SettingsService) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: errNoSettingsService}
		}
		keys := svc.Keys()
		values := make(map[string]string, len(keys))
		for _, k := range keys {
			val, err := svc.Value(k)
			if err != nil {
				return messages.SettingsLoaded{Err: err}
			}
			values[k] = val
		}
		return messages.SettingsLoaded{Keys: keys, Values: values}
	}
}

// saveSetting returns a command that writes one key.
func saveSetting(svc driving.SettingsService, key, value string) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Key: key, Err: errNoSettingsService}
		}
		return messages.SettingsSaved{Key: key, Err: svc.Set(key, value)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.keys = msg.Keys
		v.values = msg.Values
		if v.selected >= len(v.keys) {
			v.selected = 0
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.notice = "Saved " + msg.Key
		v.stopEditing()
		return v, loadSettings(v.settingsService)

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKeys(msg)
		}
		return v.handleListKeys(msg)
	}

	if v.editing {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleListKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	case keyUp:
		if v.selected > 0 {
			v.selected--
		}
	case keyDown:
		if v.selected < len(v.keys)-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected < len(v.keys) {
			v.editing = true
			v.notice = ""
			v.err = nil
			v.input.SetValue(v.values[v.keys[v.selected]])
			v.input.CursorEnd()
			return v, v.input.Focus()
		}
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		v.stopEditing()
		v.err = nil
		return v, nil
	case keyEnter:
		key := v.keys[v.selected]
		return v, saveSetting(v.settingsService, key, v.input.Value())
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) stopEditing() {
	v.editing = false
	v.input.Blur()
	v.input.SetValue("")
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.keys == nil {
		if v.err == nil {
			b.WriteString(v.styles.Muted.Render("Loading settings..."))
		}
		return b.String()
	}

	for i, key := range v.keys {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		label := labels[key]
		if label == "" {
			label = key
		}

		value := v.values[key]
		if v.editing && i == v.selected {
			value = v.input.View()
		}

		line := fmt.Sprintf("%s%-28s %s", indicator, label, value)
		if i == v.selected && !v.editing {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("    " + key))
		b.WriteString("\n")
	}

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Relevance.Render(v.notice))
		b.WriteString("\n")
	}
	if v.settingsService != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Stored in " + v.settingsService.Path()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderHelp() string {
	if v.editing {
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	}
	return v.styles.Help.Render("[↑/↓] navigate  [enter] edit  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Editing reports whether a value is being edited.
func (v *View) Editing() bool {
	return v.editing
}

// Selected returns the index of the highlighted key.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to its initial state.
func (v *View) Reset() {
	v.selected = 0
	v.err = nil
	v.notice = ""
	v.stopEditing()
}
