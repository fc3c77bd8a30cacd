package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]...",
	Short: "Delete resumes by id",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	ctx := context.Background()
	var failed int
	for _, id := range args {
		if err := resumeService.Delete(ctx, id); err != nil {
			cmd.Printf("%s %s: %v\n", red("FAILED"), id, err)
			failed++
			continue
		}
		cmd.Printf("%s %s deleted.\n", green("OK"), id)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d deletions failed", failed, len(args))
	}
	return nil
}
