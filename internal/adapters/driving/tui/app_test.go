package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Search:  &MockSearchService{},
		Summary: &MockSummaryService{},
	}
}

func newReadyApp(t *testing.T, ports *Ports) *App {
	t.Helper()
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(120, 60)
	return app
}

func testResults() []domain.SearchResult {
	return []domain.SearchResult{
		{ID: "1", Score: 0.93, Payload: domain.DocumentMetadata{Name: "report-2023.pdf", Text: "Quarterly numbers"}},
		{ID: "2", Score: 0.42, Payload: domain.DocumentMetadata{Name: "report-notes.txt", Text: "Notes"}},
	}
}

// typeQuery types text into the app and feeds back the search for the last timer.
func typeQuery(t *testing.T, app *App, text string) {
	t.Helper()
	for _, r := range text {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	// One debounce timer per keystroke; only the last one searches.
	_, cmd := app.Update(messages.DebounceFired{Seq: uint64(len([]rune(text)))})
	require.NotNil(t, cmd)
	app.Update(cmd())
}

func TestNewApp_Success(t *testing.T) {
	ports := newTestPorts()

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.Equal(t, domain.DefaultDebounce, app.Debounce())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := &Ports{
		Search:  nil,
		Summary: &MockSummaryService{},
	}

	app, err := NewApp(ports)

	assert.ErrorIs(t, err, ErrMissingSearchService)
	assert.Nil(t, app)
}

func TestNewApp_AppliesStoredSettings(t *testing.T) {
	settings := newMockSettingsService()
	settings.Settings.Search.Debounce = 150 * time.Millisecond
	ports := newTestPorts()
	ports.Settings = settings

	app, err := NewApp(ports)

	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, app.Debounce())
}

func TestNewApp_SettingsErrorKeepsDefaults(t *testing.T) {
	settings := newMockSettingsService()
	settings.GetErr = errors.New("broken config")
	ports := newTestPorts()
	ports.Settings = settings

	app, err := NewApp(ports)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDebounce, app.Debounce())
}

func TestApp_WithContext(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	cmd := app.Init()

	// Init returns a batch command
	assert.NotNil(t, cmd)
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_Update_WindowSize(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	model, cmd := app.Update(msg)

	assert.Nil(t, cmd)
	assert.True(t, model.(*App).Ready())
	assert.Contains(t, app.View(), "Sercha Finder")
}

func TestApp_Update_KeyMsg_CtrlC(t *testing.T) {
	app := newReadyApp(t, newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app := newReadyApp(t, newTestPorts())

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_HelpToggle(t *testing.T) {
	app := newReadyApp(t, newTestPorts())

	app.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Help")
	assert.Contains(t, app.View(), "summarise")

	app.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_Update_HelpEscReturnsToSearch(t *testing.T) {
	app := newReadyApp(t, newTestPorts())
	app.Update(tea.KeyMsg{Type: tea.KeyF1})

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_Update_SettingsToggleLoadsValues(t *testing.T) {
	ports := newTestPorts()
	ports.Settings = newMockSettingsService()
	app := newReadyApp(t, ports)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyF2})

	assert.Equal(t, messages.ViewSettings, app.CurrentView())
	require.NotNil(t, cmd)
	msg := cmd()
	loaded, ok := msg.(messages.SettingsLoaded)
	require.True(t, ok)
	assert.Equal(t, domain.DefaultBaseURL, loaded.Values["api.base_url"])

	app.Update(msg)
	assert.Contains(t, app.View(), domain.DefaultBaseURL)

	app.Update(tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app := newReadyApp(t, newTestPorts())
	app.Update(tea.KeyMsg{Type: tea.KeyF1})

	app.Update(messages.ViewChanged{View: messages.ViewSearch})

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_Search_EndToEnd(t *testing.T) {
	search := &MockSearchService{
		SearchFunc: func(context.Context, string) ([]domain.SearchResult, error) {
			return testResults(), nil
		},
	}
	app := newReadyApp(t, &Ports{Search: search, Summary: &MockSummaryService{}})

	typeQuery(t, app, "report")

	assert.Equal(t, []string{"report"}, search.Queries)
	assert.Equal(t, "report", app.Query())
	assert.Len(t, app.Results(), 2)
	assert.Equal(t, 0, app.Cursor())
	view := app.View()
	assert.Contains(t, view, "93%")
	assert.Contains(t, view, "42%")
}

func TestApp_Summary_EndToEnd(t *testing.T) {
	search := &MockSearchService{
		SearchFunc: func(context.Context, string) ([]domain.SearchResult, error) {
			return testResults(), nil
		},
	}
	app := newReadyApp(t, &Ports{Search: search, Summary: &MockSummaryService{}})
	typeQuery(t, app, "report")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, domain.SummaryLoading, app.Summary().Status)
	app.Update(cmd())

	assert.Equal(t, domain.SummaryContent, app.Summary().Status)
	assert.Equal(t, "report-2023.pdf", app.Summary().FileName)
	assert.Contains(t, app.View(), "short summary")
}

func TestApp_SearchResponseWhileInHelpIsApplied(t *testing.T) {
	search := &MockSearchService{
		SearchFunc: func(context.Context, string) ([]domain.SearchResult, error) {
			return testResults(), nil
		},
	}
	app := newReadyApp(t, &Ports{Search: search, Summary: &MockSummaryService{}})
	for _, r := range "report" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := app.Update(messages.DebounceFired{Seq: 6})
	require.NotNil(t, cmd)

	app.Update(tea.KeyMsg{Type: tea.KeyF1})
	app.Update(cmd())

	assert.Len(t, app.Results(), 2)
}

func TestApp_KeysInHelpDoNotReachSearch(t *testing.T) {
	search := &MockSearchService{}
	app := newReadyApp(t, &Ports{Search: search, Summary: &MockSummaryService{}})
	app.Update(tea.KeyMsg{Type: tea.KeyF1})

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Equal(t, "", app.Query())
}

func TestApp_WaitForReload_NilWithoutChannel(t *testing.T) {
	ports := newTestPorts()
	ports.Settings = newMockSettingsService()
	app, _ := NewApp(ports)

	assert.Nil(t, app.waitForReload())
}

func TestApp_WaitForReload_ClosedChannel(t *testing.T) {
	reloads := make(chan struct{})
	close(reloads)
	ports := newTestPorts()
	ports.Settings = newMockSettingsService()
	ports.Reloads = reloads
	app, _ := NewApp(ports)

	cmd := app.waitForReload()

	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
}

func TestApp_SettingsReloaded_AppliesAndRearms(t *testing.T) {
	reloads := make(chan struct{}, 1)
	settings := newMockSettingsService()
	var applied *domain.AppSettings
	ports := newTestPorts()
	ports.Settings = settings
	ports.Reloads = reloads
	ports.OnSettingsChanged = func(s *domain.AppSettings) { applied = s }
	app := newReadyApp(t, ports)

	settings.Settings.Search.Debounce = 500 * time.Millisecond
	settings.Settings.API.BaseURL = "http://search.internal:9000"
	reloads <- struct{}{}
	msg := app.waitForReload()()

	reloaded, ok := msg.(messages.SettingsReloaded)
	require.True(t, ok)
	_, cmd := app.Update(reloaded)

	assert.NotNil(t, cmd)
	assert.Equal(t, 500*time.Millisecond, app.Debounce())
	require.NotNil(t, applied)
	assert.Equal(t, "http://search.internal:9000", applied.API.BaseURL)
	assert.Contains(t, app.View(), "settings reloaded")
}

func TestApp_SettingsReloaded_Error(t *testing.T) {
	called := false
	ports := newTestPorts()
	ports.OnSettingsChanged = func(*domain.AppSettings) { called = true }
	app := newReadyApp(t, ports)

	app.Update(messages.SettingsReloaded{Err: errors.New("bad toml")})

	assert.False(t, called)
	assert.Equal(t, domain.DefaultDebounce, app.Debounce())
	assert.Contains(t, app.View(), "settings reload failed")
}

func TestApp_SettingsSaved_RefreshesSettings(t *testing.T) {
	settings := newMockSettingsService()
	var applied *domain.AppSettings
	ports := newTestPorts()
	ports.Settings = settings
	ports.OnSettingsChanged = func(s *domain.AppSettings) { applied = s }
	app := newReadyApp(t, ports)

	settings.Settings.Search.Debounce = 750 * time.Millisecond
	app.Update(messages.SettingsSaved{Key: "search.debounce_ms"})

	assert.Equal(t, 750*time.Millisecond, app.Debounce())
	assert.NotNil(t, applied)
}

func TestApp_SettingsSaved_ErrorDoesNotRefresh(t *testing.T) {
	called := false
	ports := newTestPorts()
	ports.Settings = newMockSettingsService()
	ports.OnSettingsChanged = func(*domain.AppSettings) { called = true }
	app := newReadyApp(t, ports)

	app.Update(messages.SettingsSaved{Key: "search.debounce_ms", Err: errors.New("invalid")})

	assert.False(t, called)
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newReadyApp(t, newTestPorts())
	testErr := errors.New("something broke")

	app.Update(messages.ErrorOccurred{Err: testErr})

	assert.Equal(t, testErr, app.Err())
	assert.Contains(t, app.View(), "something broke")
}

func TestApp_Close(t *testing.T) {
	search := &MockSearchService{}
	app := newReadyApp(t, &Ports{Search: search, Summary: &MockSummaryService{}})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	app.Close()
	_, cmd := app.Update(messages.DebounceFired{Seq: 1})

	assert.Nil(t, cmd)
	assert.Empty(t, search.Queries)
}
