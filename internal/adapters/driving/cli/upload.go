package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/logger"
)

var uploadWatch bool

var uploadCmd = &cobra.Command{
	Use:   "upload [file]...",
	Short: "Upload resume files",
	Long: `Uploads one or more resume files to the backend.
Accepted types are .pdf, .docx and .doc, up to 10 MB each.

With --watch, the given directory is monitored and any resume file
created in it is uploaded automatically until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().BoolVarP(&uploadWatch, "watch", "w", false, "watch a directory and upload new resume files")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	ctx := context.Background()

	if uploadWatch {
		if len(args) != 1 {
			return errors.New("--watch takes exactly one directory")
		}
		return watchAndUpload(ctx, cmd, args[0])
	}

	report, err := resumeService.Upload(ctx, args)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	printUploadReport(cmd, report)
	return nil
}

func printUploadReport(cmd *cobra.Command, report domain.UploadReport) {
	if report.Failed == 0 {
		cmd.Printf("%s %d file(s) uploaded.\n", green("OK"), report.Successful)
	} else {
		cmd.Printf("%s %d uploaded, %d failed.\n", yellow("PARTIAL"), report.Successful, report.Failed)
		for _, e := range report.Errors {
			cmd.Printf("  %s %s\n", red("-"), e)
		}
	}
	if report.Message != "" {
		cmd.Printf("  %s\n", report.Message)
	}
}

// watchAndUpload uploads every resume file created under dir until the
// process is interrupted.
func watchAndUpload(ctx context.Context, cmd *cobra.Command, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	cmd.Printf("Watching %s for new resumes (Ctrl-C to stop)...\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !isResumeFile(event.Name) {
				logger.Debug("watch: ignoring %s", event.Name)
				continue
			}
			cmd.Printf("Uploading %s...\n", filepath.Base(event.Name))
			report, err := resumeService.Upload(ctx, []string{event.Name})
			if err != nil {
				cmd.Printf("  %s %v\n", red("FAILED"), err)
				continue
			}
			printUploadReport(cmd, report)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case <-sigCh:
			cmd.Println("Stopped.")
			return nil
		}
	}
}

func isResumeFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".pdf" || ext == ".docx" || ext == ".doc"
}
