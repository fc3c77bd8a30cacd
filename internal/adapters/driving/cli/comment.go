package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var commentAuthor string

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage review comments on resumes",
}

var commentSetCmd = &cobra.Command{
	Use:   "set [resume-id] [text]",
	Short: "Set the review comment on a resume",
	Long: `Creates or replaces the review comment on a resume.
Comments must be between 10 and 200 characters.`,
	Args: cobra.ExactArgs(2),
	RunE: runCommentSet,
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete [resume-id]",
	Short: "Delete the review comment on a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommentDelete,
}

func init() {
	commentSetCmd.Flags().StringVar(&commentAuthor, "author", "", "comment author")
	commentCmd.AddCommand(commentSetCmd)
	commentCmd.AddCommand(commentDeleteCmd)
	rootCmd.AddCommand(commentCmd)
}

func runCommentSet(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	ctx := context.Background()
	// Comments attach to a resume in the local snapshot, so make sure
	// the collection is loaded first.
	if err := resumeService.Refresh(ctx); err != nil {
		return fmt.Errorf("load resumes: %w", err)
	}

	if err := resumeService.SetComment(ctx, args[0], args[1], commentAuthor); err != nil {
		return fmt.Errorf("set comment: %w", err)
	}
	cmd.Printf("%s comment set on %s.\n", green("OK"), args[0])
	return nil
}

func runCommentDelete(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	ctx := context.Background()
	if err := resumeService.Refresh(ctx); err != nil {
		return fmt.Errorf("load resumes: %w", err)
	}

	if err := resumeService.DeleteComment(ctx, args[0]); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	cmd.Printf("%s comment removed from %s.\n", green("OK"), args[0])
	return nil
}
