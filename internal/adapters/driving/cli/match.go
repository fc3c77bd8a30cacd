package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	matchGroup string
	matchLimit int
	matchJSON  bool
)

var matchCmd = &cobra.Command{
	Use:   "match [job-description-file]",
	Short: "Rank candidates against a job description file",
	Long: `Uploads a job description document and prints candidates ranked by
how well they match it, using the same scoring as search.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchGroup, "group", "g", "", "restrict the match to one group")
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "n", 10, "maximum number of candidates")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	resp, err := searchService.MatchJobDescription(context.Background(), args[0], matchGroup)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}
	return outputCandidates(cmd, resp, matchLimit, matchJSON)
}
