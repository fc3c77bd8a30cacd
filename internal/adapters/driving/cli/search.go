package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

var (
	searchGroup string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Rank candidates against a free-text query",
	Long: `Runs a free-text query against the resume collection and prints
candidates ranked by average score (clarity, experience, loyalty and
reputation, each 0-10). Queries must be at least 5 characters.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchGroup, "group", "g", "", "restrict the search to one group")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of candidates")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	resp, err := searchService.Search(context.Background(), args[0], searchGroup)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return outputCandidates(cmd, resp, searchLimit, searchJSON)
}

func outputCandidates(cmd *cobra.Command, resp domain.SearchResponse, limit int, asJSON bool) error {
	candidates := resp.Candidates
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	if asJSON {
		out := resp
		out.Candidates = candidates
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(candidates) == 0 {
		cmd.Println("No matching candidates.")
		return nil
	}

	if resp.Summary != "" {
		cmd.Println(resp.Summary)
		cmd.Println()
	}

	for i := range candidates {
		c := &candidates[i]
		name := c.Name
		if name == "" {
			name = c.ID
		}
		cmd.Printf("  [%d] %s %s\n", i+1, bold(name), cyan(fmt.Sprintf("%.1f", c.AverageScore)))
		cmd.Printf("      clarity %.1f / experience %.1f / loyalty %.1f / reputation %.1f\n",
			c.Scores.Clarity, c.Scores.Experience, c.Scores.Loyalty, c.Scores.Reputation)
		if c.Email != "" || c.Phone != "" {
			cmd.Printf("      %s\n", strings.TrimSpace(c.Email+"  "+c.Phone))
		}
		if len(c.Skills) > 0 {
			cmd.Printf("      Skills: %s\n", strings.Join(c.Skills, ", "))
		}
		for _, h := range c.Highlights {
			cmd.Printf("      - %s\n", h)
		}
		if c.SourceFile != "" {
			cmd.Printf("      Source: %s\n", c.SourceFile)
		}
		cmd.Println()
	}
	return nil
}
