package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driving/tui"
	"github.com/custodia-labs/sercha-finder/internal/core/domain"
	"github.com/custodia-labs/sercha-finder/internal/logger"
)

// logFileName receives verbose logs while the TUI owns the terminal.
const logFileName = "sercha-finder.log"

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("interactive mode requires a terminal; use 'sercha-finder search' instead")

// isTerminal reports whether stdin and stdout are terminals. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive search box",
	Long: `Launch the interactive search box. This is also what running
sercha-finder without a subcommand does.

Controls:
  (type)   Search as you type
  ↑/↓      Move through results
  Enter    Summarise the highlighted result
  Tab      Copy the result's name into the search box
  Esc      Close the dropdown, then the summary
  F1       Toggle help
  F2       Settings
  Ctrl+C   Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !isTerminal() {
		return errNotTerminal
	}

	if logger.IsVerbose() {
		f, err := tea.LogToFile(logPath(), "")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		defer logger.Redirect(f)()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ports := tui.NewPorts(searchService, summaryService, settingsService)
	ports.OnSettingsChanged = func(s *domain.AppSettings) {
		if remoteClient != nil {
			remoteClient.Apply(s.API)
		}
	}

	if configStore != nil {
		watcher, err := file.NewWatcher(configStore)
		if err != nil {
			logger.Warn("Config watcher unavailable: %v", err)
		} else {
			defer watcher.Close()
			reloads, err := watcher.Watch(ctx)
			if err != nil {
				logger.Warn("Config watcher unavailable: %v", err)
			} else {
				ports.Reloads = reloads
			}
		}
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(ctx).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// logPath places the log next to the config file when one is in use.
func logPath() string {
	if configStore != nil {
		return filepath.Join(filepath.Dir(configStore.Path()), logFileName)
	}
	return filepath.Join(os.TempDir(), logFileName)
}
