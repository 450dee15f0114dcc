package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

var summarizeIndex int

var summarizeCmd = &cobra.Command{
	Use:     "summarize [query]",
	Aliases: []string{"summarise"},
	Short:   "Summarise a search result",
	Long: `Searches for the query, then requests an AI summary of one result's
full text. --index picks the result by its position in 'search' output.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().IntVarP(&summarizeIndex, "index", "i", 1, "position of the result to summarise (1-based)")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if summaryService == nil {
		return errors.New("summary service not configured")
	}
	if summarizeIndex < 1 {
		return fmt.Errorf("index must be at least 1, got %d", summarizeIndex)
	}

	results, err := searchService.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %s", domain.UserMessage(err))
	}
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}
	if summarizeIndex > len(results) {
		return fmt.Errorf("index %d out of range: %d results", summarizeIndex, len(results))
	}

	result := results[summarizeIndex-1]
	cmd.Printf("Summarising %s...\n", result.Payload.Name)

	summary, err := summaryService.Summarize(cmd.Context(), &result)
	if err != nil {
		return fmt.Errorf("summary failed: %s", domain.UserMessage(err))
	}

	cmd.Println()
	cmd.Printf("Summary: %s\n", summary.FileName)
	cmd.Println()
	cmd.Println(summary.Text)
	return nil
}
