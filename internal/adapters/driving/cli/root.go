// Package cli provides the cobra command tree for sercha-finder.
// It is a driving adapter: commands translate flags and arguments into
// calls on the core services.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driven/config/env"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/sercha-finder/internal/adapters/driven/remote"
	"github.com/custodia-labs/sercha-finder/internal/core/domain"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-finder/internal/core/services"
	"github.com/custodia-labs/sercha-finder/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
	apiURL    string
)

// Services shared by all commands, built before any command runs.
var (
	searchService   driving.SearchService
	summaryService  driving.SummaryService
	settingsService driving.SettingsService

	// remoteClient is reconfigured when settings change at runtime.
	remoteClient *remote.Client

	// configStore is nil when settings are held in memory only.
	configStore *file.ConfigStore
)

// initServices builds the services. Tests replace it to inject mocks.
var initServices = buildServices

var rootCmd = &cobra.Command{
	Use:   "sercha-finder",
	Short: "Search-as-you-type client for a document search service",
	Long: `sercha-finder searches a remote document index as you type.

Run without arguments to open the interactive search box. Results appear
in a dropdown after a short pause in typing; press enter on a result to
request an AI summary of the document.

The service is expected at http://127.0.0.1:8000 unless configured with
--api-url, SERCHA_FINDER_API_URL or 'sercha-finder settings set api.base_url'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices(cmd)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"directory holding config.toml (default ~/"+file.DefaultDirName+")")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "search service URL, overriding config and environment")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// flagOverrides applies command-line flags on top of all other settings.
type flagOverrides struct {
	apiURL string
}

// Ensure flagOverrides implements the interface.
var _ driven.SettingsOverlay = flagOverrides{}

func (f flagOverrides) Apply(settings *domain.AppSettings) {
	if f.apiURL != "" {
		settings.API.BaseURL = strings.TrimRight(f.apiURL, "/")
	}
}

// buildServices wires config, the remote client and the core services.
// Precedence is flag, then environment, then config file, then defaults.
func buildServices(_ *cobra.Command) error {
	logger.Section("Startup")

	overrides, err := env.Load()
	if err != nil {
		return err
	}

	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("Config file unavailable, settings will not persist: %v", err)
		store = memory.NewConfigStore()
		configStore = nil
	} else {
		store = fileStore
		configStore = fileStore
	}
	logger.Debug("Config: %s", store.Path())

	svc := services.NewSettingsService(store, overrides, flagOverrides{apiURL: apiURL})
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	logger.Debug("Search service: %s", settings.API.BaseURL)

	remoteClient = remote.NewClient(remote.ConfigFromSettings(settings.API))
	settingsService = svc
	searchService = services.NewSearchService(remoteClient)
	summaryService = services.NewSummaryService(remoteClient)
	return nil
}
