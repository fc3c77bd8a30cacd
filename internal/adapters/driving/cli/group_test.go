package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

func TestGroupCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range groupCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "create")
	assert.Contains(t, names, "delete")
}

func TestGroupListCmd_PrintsGroups(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"group", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "backend")
}

func TestGroupCreateCmd_PrintsNewGroup(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"group", "create", "devops"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "devops")
}

func TestGroupDeleteCmd_ExplainsLinkedResumes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	groupService.(*stubGroupService).err = fmt.Errorf("%w", domain.ErrGroupHasResumes)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"group", "delete", "g1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "still has resumes")
}
