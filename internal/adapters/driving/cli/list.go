package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
)

var (
	listGroup    string
	listStatus   string
	listPage     int
	listPageSize int
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded resumes",
	Long: `Fetches the resume collection from the backend and prints it.
Results can be narrowed by group or processing status and paginated.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listGroup, "group", "g", "", "only resumes in this group")
	listCmd.Flags().StringVar(&listStatus, "status", "", "only resumes with this status (uploaded, processing, completed, failed)")
	listCmd.Flags().IntVar(&listPage, "page", 0, "page number (1-based)")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 20, "resumes per page")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	ctx := context.Background()
	if err := resumeService.Refresh(ctx); err != nil {
		return fmt.Errorf("list resumes: %w", err)
	}

	filter := driving.ResumeFilter{
		Group:  listGroup,
		Status: domain.ResumeStatus(listStatus),
	}
	if listPage > 0 {
		filter.Page = listPage
		filter.PageSize = listPageSize
	}
	resumes := resumeService.Resumes(filter)

	if listJSON {
		data, err := json.MarshalIndent(resumes, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal resumes: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(resumes) == 0 {
		cmd.Println("No resumes found.")
		return nil
	}

	cmd.Printf("%d resume(s):\n\n", len(resumes))
	for i := range resumes {
		r := &resumes[i]
		cmd.Printf("  %s %s (%s, %s)\n",
			cyan(r.ID), bold(r.OriginalFilename), formatSize(r.Size), statusLabel(r.Status))
		if r.Group != "" {
			cmd.Printf("      Group: %s\n", r.Group)
		}
		if r.Comment != nil {
			cmd.Printf("      Comment: %s\n", r.Comment.Body)
		}
	}
	return nil
}

func statusLabel(s domain.ResumeStatus) string {
	switch s {
	case domain.StatusCompleted:
		return green(string(s))
	case domain.StatusFailed:
		return red(string(s))
	case domain.StatusProcessing:
		return yellow(string(s))
	default:
		return string(s)
	}
}
