package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
)

// excerptLength matches the excerpt shown in the TUI dropdown.
const excerptLength = 150

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the document index",
	Long: `Sends a single query to the search service and prints the ranked results.
Each result shows its relevance, metadata, an excerpt and its directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results (0 = all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	results, err := searchService.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %s", domain.UserMessage(err))
	}

	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	if results == nil {
		results = []domain.SearchResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		// Format: [N] name .ext (NN%)
		p := results[i].Payload
		cmd.Printf("  [%d] %s %s (%d%%)\n", i+1, p.Name, p.Extension, results[i].Relevance())

		if meta := metaLine(p); meta != "" {
			cmd.Printf("      %s\n", meta)
		}
		if excerpt := excerptOf(p); excerpt != "" {
			cmd.Printf("      %s\n", excerpt)
		}
		if path := p.JoinedPath(); path != "" {
			cmd.Printf("      %s\n", path)
		}
		cmd.Println()
	}

	return nil
}

// metaLine joins the optional author and creation date with the size.
func metaLine(p domain.DocumentMetadata) string {
	var parts []string
	if author := p.AuthorLabel(); author != "" {
		parts = append(parts, "Author: "+author)
	}
	if created := p.CreatedLabel(); created != "" {
		parts = append(parts, "Created: "+created)
	}
	if p.Size != "" {
		parts = append(parts, "Size: "+p.Size)
	}
	return strings.Join(parts, " | ")
}

func excerptOf(p domain.DocumentMetadata) string {
	text := strings.Join(strings.Fields(p.Excerpt(excerptLength)), " ")
	if text == "" {
		return ""
	}
	return text + "..."
}
