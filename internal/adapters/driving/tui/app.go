package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/sercha-finder/internal/core/domain"
	"github.com/custodia-labs/sercha-finder/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the global keybindings.
	keymap *keymap.KeyMap

	// searchView is the search box, dropdown and summary panel.
	searchView *search.View

	// settingsView is the settings editor.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		searchView:   search.NewView(s, km, ports.Search, ports.Summary),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewSearch,
	}

	if ports.Settings != nil {
		current, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("Using default settings: %v", err)
		} else {
			a.searchView.SetDebounce(current.Search.Debounce)
			a.searchView.SetEndpoint(current.API.BaseURL)
		}
	}

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("sercha-finder"),
		a.searchView.Init(),
		a.waitForReload(),
	)
}

// waitForReload blocks on the reload channel and reports the new settings.
// It returns nil when there is nothing to wait on.
func (a *App) waitForReload() tea.Cmd {
	reloads := a.ports.Reloads
	svc := a.ports.Settings
	if reloads == nil || svc == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-reloads; !ok {
			return nil
		}
		current, err := svc.Get()
		return messages.SettingsReloaded{Settings: current, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKeyMsg(msg)

	case tea.MouseMsg:
		if a.currentView == messages.ViewSearch {
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd

	// Search traffic always reaches the search view so that responses
	// arriving while another view is shown are not lost.
	case messages.DebounceFired, messages.SearchCompleted,
		messages.SummaryCompleted, messages.ResultSelected:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.SettingsReloaded:
		a.handleSettingsReloaded(msg)
		cmds := []tea.Cmd{a.waitForReload()}
		if a.currentView == messages.ViewSettings && !a.settingsView.Editing() {
			cmds = append(cmds, a.settingsView.Init())
		}
		return a, tea.Batch(cmds...)

	case messages.SettingsLoaded:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		if msg.Err == nil {
			a.refreshSettings()
		}
		return a, cmd

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view is static
	}

	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return tea.Quit

	case keymap.Matches(keyStr, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			return a.switchTo(messages.ViewSearch)
		}
		return a.switchTo(messages.ViewHelp)

	case keymap.Matches(keyStr, a.keymap.Settings):
		if a.currentView == messages.ViewSettings {
			return a.switchTo(messages.ViewSearch)
		}
		return a.switchTo(messages.ViewSettings)
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		if keymap.Matches(keyStr, a.keymap.Close) {
			return a.switchTo(messages.ViewSearch)
		}
	}
	return cmd
}

// switchTo activates a view. The search view keeps its state across switches.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	if view == messages.ViewSettings {
		a.settingsView.Reset()
		return a.settingsView.Init()
	}
	return nil
}

func (a *App) handleSettingsReloaded(msg messages.SettingsReloaded) {
	if msg.Err != nil {
		logger.Warn("Settings reload failed: %v", msg.Err)
		a.searchView.SetStatusMessage("settings reload failed")
		return
	}
	if msg.Settings == nil {
		return
	}
	a.applySettings(msg.Settings)
	a.searchView.SetStatusMessage("settings reloaded")
}

// refreshSettings re-reads settings after an in-app edit.
func (a *App) refreshSettings() {
	if a.ports.Settings == nil {
		return
	}
	current, err := a.ports.Settings.Get()
	if err != nil {
		logger.Warn("Reading saved settings failed: %v", err)
		return
	}
	a.applySettings(current)
}

func (a *App) applySettings(s *domain.AppSettings) {
	logger.Debug("Applying settings: url=%s debounce=%s", s.API.BaseURL, s.Search.Debounce)
	a.searchView.SetDebounce(s.Search.Debounce)
	a.searchView.SetEndpoint(s.API.BaseURL)
	if a.ports.OnSettingsChanged != nil {
		a.ports.OnSettingsChanged(s)
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.searchView.View()
	}
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Normal.Render("Type to search. Results update after a short pause."))
	b.WriteString("\n\n")

	columns := make([]string, 0, len(a.keymap.FullHelp()))
	for _, group := range a.keymap.FullHelp() {
		var col strings.Builder
		for _, binding := range group {
			h := binding.Help()
			col.WriteString(a.styles.Selected.Render(fmt.Sprintf("%-8s", h.Key)))
			col.WriteString(" ")
			col.WriteString(a.styles.Muted.Render(h.Desc))
			col.WriteString("\n")
		}
		columns = append(columns, lipgloss.NewStyle().PaddingRight(4).Render(col.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[esc] back to search"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.Close()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Close cancels any in-flight requests.
func (a *App) Close() {
	a.searchView.Close()
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.searchView.Results()
}

// Cursor returns the dropdown cursor, or -1 when nothing is highlighted.
func (a *App) Cursor() int {
	return a.searchView.Cursor()
}

// Summary returns the summary panel state.
func (a *App) Summary() domain.SummaryState {
	return a.searchView.Summary()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Debounce returns the search view's debounce interval.
func (a *App) Debounce() time.Duration {
	return a.searchView.Debounce()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
