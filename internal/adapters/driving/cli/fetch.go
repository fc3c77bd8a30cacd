package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var fetchOutput string

var fetchCmd = &cobra.Command{
	Use:   "fetch [filename]",
	Short: "Download a stored resume file",
	Long: `Downloads a stored resume file from the backend.
By default the file is written to the current directory under its
stored name; use --output to pick a different path.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "destination path")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	filename := args[0]
	dest := fetchOutput
	if dest == "" {
		dest = filepath.Base(filename)
	}

	if err := resumeService.Download(context.Background(), filename, dest); err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}
	cmd.Printf("%s %s -> %s\n", green("OK"), filename, dest)
	return nil
}
