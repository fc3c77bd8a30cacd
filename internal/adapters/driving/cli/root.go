// Package cli wires the cobra command tree over the core services.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hirebase/hirebase-cli/internal/backend"
	"github.com/hirebase/hirebase-cli/internal/config"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
	"github.com/hirebase/hirebase-cli/internal/core/services"
	"github.com/hirebase/hirebase-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	noColor    bool
	apiURLFlag string
)

// Services used by the commands. Wired in PersistentPreRunE from
// configuration; tests inject fakes before calling Execute.
var (
	resumeService driving.ResumeService
	groupService  driving.GroupService
	searchService driving.SearchService
)

var rootCmd = &cobra.Command{
	Use:   "hirebase",
	Short: "Manage and search a resume collection",
	Long: `hirebase is a client for a resume-management backend.

Upload resumes, organise them into groups, attach review comments, and
rank candidates against free-text queries or a job description file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if noColor {
			disableColor()
		}

		// Tests inject services directly; don't overwrite them.
		if resumeService != nil && groupService != nil && searchService != nil {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if apiURLFlag != "" {
			cfg.API.BaseURL = apiURLFlag
		}
		logger.Debug("backend: %s", cfg.API.BaseURL)

		client := backend.NewClient(backend.Options{
			BaseURL:           cfg.API.BaseURL,
			Timeout:           time.Duration(cfg.API.TimeoutSeconds) * time.Second,
			MaxAttempts:       cfg.API.MaxAttempts,
			RetryDelay:        time.Duration(cfg.API.RetryDelayMillis) * time.Millisecond,
			RequestsPerSecond: cfg.API.RequestsPerSecond,
		})

		resumeService = services.NewResumeService(backend.NewResumeAPI(client), backend.NewCommentAPI(client))
		groupService = services.NewGroupService(backend.NewGroupAPI(client))
		searchService = services.NewSearchService(backend.NewSearchAPI(client))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "backend base URL (overrides config and environment)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
