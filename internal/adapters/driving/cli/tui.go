package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for hirebase.

The TUI provides a visual interface for browsing resumes, running
candidate searches and managing groups with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Search
  Esc      - Back
  d        - Delete selected item
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so terminal state problems come with a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(resumeService, groupService, searchService)
	app, err := tui.NewApp(ports)
	if err != nil {
		return err
	}
	return app.Run()
}
