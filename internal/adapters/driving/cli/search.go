package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Print suggestions for a query",
	Long: `Searches GitHub repositories and users once and prints the merged list.
Results are sorted by name; a failure of one endpoint is reported as a
warning while the other endpoint's suggestions are still shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of suggestions (0 for all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output suggestions as JSON")
	rootCmd.AddCommand(searchCmd)
}

// jsonSuggestion is the JSON shape of one suggestion.
type jsonSuggestion struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars,omitempty"`
	AccountType string `json:"account_type,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := requireSuggest(); err != nil {
		return err
	}

	query := args[0]
	result, err := suggestService.Suggest(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if result.RepositoryErr != nil {
		cmd.PrintErrf("warning: repository search failed: %v\n", result.RepositoryErr)
	}
	if result.UserErr != nil {
		cmd.PrintErrf("warning: user search failed: %v\n", result.UserErr)
	}

	items := result.Suggestions
	if searchLimit > 0 && len(items) > searchLimit {
		items = items[:searchLimit]
	}

	if searchJSON {
		return outputSearchJSON(cmd, items)
	}

	return outputSearchTable(cmd, query, items)
}

func outputSearchJSON(cmd *cobra.Command, items []domain.Suggestion) error {
	out := make([]jsonSuggestion, len(items))
	for i, s := range items {
		out[i] = jsonSuggestion{
			Kind:        s.Kind.String(),
			Name:        s.Name(),
			URL:         s.HTMLURL,
			AvatarURL:   s.AvatarURL,
			Description: s.Description,
			Stars:       s.Stars,
			AccountType: s.AccountType,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, query string, items []domain.Suggestion) error {
	w := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintf(w, "Sorry, there is no option matching your search query %s!\n", query)
		return nil
	}

	fmt.Fprintf(w, "Suggestions for %q:\n", query)
	fmt.Fprintln(w)
	for i := range items {
		s := items[i]
		if s.IsRepository() {
			fmt.Fprintf(w, "[%d] %s  ★ %s\n", i+1, s.FullName, humanize.Comma(int64(s.Stars)))
			if s.Description != "" {
				fmt.Fprintf(w, "    %s\n", s.Description)
			}
		} else {
			fmt.Fprintf(w, "[%d] %s  (%s)\n", i+1, s.Login, s.AccountType)
		}
		fmt.Fprintf(w, "    %s\n", s.HTMLURL)
	}
	return nil
}
