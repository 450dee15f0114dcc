package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the search service endpoint and search behaviour.

Settings are read from the config file, then overridden by SERCHA_FINDER_*
environment variables (or a .env file) and finally by --api-url.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting and save it to the config file.

Keys:
  api.base_url         search service URL
  api.timeout_seconds  request timeout in seconds
  api.rate_limit       maximum requests per second (0 = unlimited)
  search.debounce_ms   pause after typing before searching, in milliseconds`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	for _, key := range settingsService.Keys() {
		value, err := settingsService.Value(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		cmd.Printf("  %-20s %s\n", key, value)
	}
	cmd.Println()
	cmd.Printf("Config file: %s\n", settingsService.Path())

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	cmd.Println(settingsService.Path())
	return nil
}
