package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/tagdata/internal/builtins"
	"github.com/conneroisu/tagdata/internal/customdata"
	"github.com/conneroisu/tagdata/internal/errors"
	"github.com/conneroisu/tagdata/internal/logging"
	"github.com/conneroisu/tagdata/internal/registry"
	"github.com/conneroisu/tagdata/internal/watcher"
)

var checkCmd = &cobra.Command{
	Use:     "check <file>...",
	Aliases: []string{"c"},
	Short:   "Validate custom HTMLDataV1 data files",
	Long: `Validate custom data files in HTMLDataV1 format (.json, .yaml or .yml).
Every defect in a file is reported, not only the first one.

Examples:
  tagdata check tags.json                 # Validate one file
  tagdata check a.json b.yaml --builtins  # Also reject names used by built-ins
  tagdata check tags.json --watch         # Revalidate on every save`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var (
	checkWatch    bool
	checkBuiltins bool
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkWatch, "watch", false, "Revalidate files whenever they change")
	checkCmd.Flags().BoolVar(&checkBuiltins, "builtins", false, "Report tags whose names collide with built-in tags")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	log := logger.WithComponent("check")

	if !checkWatch {
		failed := checkFiles(cmd.Context(), out, log, args)
		if failed > 0 {
			return errors.NewValidationError(
				errors.ErrCodeValidationFailed,
				fmt.Sprintf("%d of %d files failed validation", failed, len(args)),
			)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchFiles(ctx, out, log, args)
}

// checkFiles validates every path and reports each result to out. It returns
// the number of files that failed.
func checkFiles(ctx context.Context, out io.Writer, log logging.Logger, paths []string) int {
	failed := 0
	for _, path := range paths {
		if err := checkFile(ctx, out, log, path); err != nil {
			failed++
		}
	}

	return failed
}

func checkFile(ctx context.Context, out io.Writer, log logging.Logger, path string) error {
	perf := logging.StartOperation(log, "check_file")

	reg, err := loadForCheck(path)
	if err != nil {
		perf.EndWithError(ctx, err)
		reportFailure(out, path, err)
		return err
	}

	perf.End(ctx)
	fmt.Fprintf(out, "%s: ok (%d tags)\n", path, reg.Len())

	return nil
}

func loadForCheck(path string) (*registry.Registry, error) {
	if checkBuiltins {
		return customdata.LoadAll(builtins.Registry(), path)
	}

	return customdata.Load(path)
}

func reportFailure(out io.Writer, path string, err error) {
	var defects *errors.Collection
	if !stderrors.As(err, &defects) || len(defects.Errors) < 2 {
		fmt.Fprintf(out, "%s: %v\n", path, err)
		return
	}

	fmt.Fprintf(out, "%s: %d errors\n", path, len(defects.Errors))
	for _, defect := range defects.Errors {
		fmt.Fprintf(out, "  - %v\n", defect)
	}
}

// watchFiles checks paths once, then again after each change, until ctx is
// done.
func watchFiles(ctx context.Context, out io.Writer, log logging.Logger, paths []string) error {
	fw, err := watcher.New(cfg.Watch.Debounce, log)
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeWatchSetupFailed, "cannot create file watcher", err)
	}
	defer fw.Stop()

	// watcher events carry absolute paths
	display := make(map[string]string, len(paths))
	for _, path := range paths {
		if err := fw.AddFile(path); err != nil {
			return errors.NewInternalError(errors.ErrCodeWatchSetupFailed, "cannot watch file", err).
				WithFile(path)
		}
		if abs, err := filepath.Abs(path); err == nil {
			display[abs] = path
		}
	}

	fw.AddHandler(func(events []watcher.ChangeEvent) error {
		for _, event := range events {
			path, ok := display[event.Path]
			if !ok {
				path = event.Path
			}
			log.Debug(ctx, "Data file changed", "path", path, "type", event.Type.String())

			if event.Type == watcher.EventTypeDeleted {
				fmt.Fprintf(out, "%s: deleted\n", path)
				continue
			}
			_ = checkFile(ctx, out, log, path)
		}
		return nil
	})

	// report the current state before any change can be printed
	checkFiles(ctx, out, log, paths)

	if err := fw.Start(ctx); err != nil {
		return errors.NewInternalError(errors.ErrCodeWatchSetupFailed, "cannot start file watcher", err)
	}
	log.Info(ctx, "Watching for changes", "files", len(paths), "debounce", cfg.Watch.Debounce.String())

	<-ctx.Done()
	return nil
}
