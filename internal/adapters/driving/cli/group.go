package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage resume groups",
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List groups",
	RunE:  runGroupList,
}

var groupCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupCreate,
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupDelete,
}

func init() {
	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupCreateCmd)
	groupCmd.AddCommand(groupDeleteCmd)
	rootCmd.AddCommand(groupCmd)
}

func runGroupList(cmd *cobra.Command, _ []string) error {
	if groupService == nil {
		return errors.New("group service not configured")
	}

	if err := groupService.Refresh(context.Background()); err != nil {
		return fmt.Errorf("list groups: %w", err)
	}

	groups := groupService.Groups()
	if len(groups) == 0 {
		cmd.Println("No groups.")
		return nil
	}
	for _, g := range groups {
		cmd.Printf("  %s %s\n", cyan(g.ID), bold(g.Name))
	}
	return nil
}

func runGroupCreate(cmd *cobra.Command, args []string) error {
	if groupService == nil {
		return errors.New("group service not configured")
	}

	group, err := groupService.Create(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	cmd.Printf("%s group %q created (%s).\n", green("OK"), group.Name, group.ID)
	return nil
}

func runGroupDelete(cmd *cobra.Command, args []string) error {
	if groupService == nil {
		return errors.New("group service not configured")
	}

	if err := groupService.Delete(context.Background(), args[0]); err != nil {
		if domain.IsGroupHasResumes(err) {
			return fmt.Errorf("group %s still has resumes; move or delete them first", args[0])
		}
		return fmt.Errorf("delete group: %w", err)
	}
	cmd.Printf("%s group %s deleted.\n", green("OK"), args[0])
	return nil
}
