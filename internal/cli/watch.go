package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cardboard/internal/ui"
	"github.com/aidanlsb/cardboard/internal/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <file>...",
	Short: "Reload vCard files when they change",
	Long: `Watch vCard files and reload them whenever they are saved.

This runs in the foreground. After each reload the contact count and any
unhandled lines are reported. A deleted file is reported as missing and
picked up again if it comes back.

The watcher:
- Watches the directories holding the files, so editors that replace files
  by renaming are picked up
- Debounces rapid changes (waits 100ms after the last change by default)

Examples:
  cardboard watch contacts.vcf
  cardboard watch work.vcf home.vcf --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "Quiet period before a changed file is reloaded")
}

func runWatch(cmd *cobra.Command, args []string) error {
	b, cols, err := loadBoard(cmd.Context(), args)
	if err != nil {
		return handleErr(err, ErrFileReadError, "")
	}

	w, err := watcher.New(watcher.Config{
		Board:         b,
		Logger:        getLogger(),
		DebounceDelay: watchDebounce,
		OnReload:      reportReload,
	})
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			if !isJSONOutput() {
				fmt.Println("\nShutting down watcher...")
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	if !isJSONOutput() {
		for _, col := range cols {
			fmt.Printf("Watching %s %s\n", ui.FilePath(col.Path), ui.Count(col.Document.Len(), "contact", "contacts"))
		}
		fmt.Println(ui.Hint("Press Ctrl+C to stop"))
	}

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return handleError(ErrInternal, err, "")
	}
	return nil
}

type reloadEvent struct {
	File     string    `json:"file"`
	Contacts int       `json:"contacts"`
	Error    string    `json:"error,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
}

func reportReload(e watcher.Event) {
	ev := reloadEvent{File: e.Path}
	if e.Err != nil {
		ev.Error = e.Err.Error()
	} else if e.Column != nil {
		ev.Contacts = e.Column.Document.Len()
		ev.Warnings = warningsFrom(e.Path, e.Column.Document.Warnings())
	}

	if isJSONOutput() {
		outputJSON(Response{OK: e.Err == nil, Data: ev, Warnings: ev.Warnings})
		return
	}

	if errors.Is(e.Err, fs.ErrNotExist) {
		fmt.Println(ui.Warningf("%s is missing", ui.FilePath(e.Path)))
		return
	}
	if e.Err != nil {
		fmt.Println(ui.Errorf("%s: %v", ui.FilePath(e.Path), e.Err))
		return
	}
	fmt.Println(ui.Successf("Reloaded %s %s", ui.FilePath(e.Path), ui.Count(ev.Contacts, "contact", "contacts")))
	if e.Column != nil {
		printWarnings(e.Column.Document.Warnings())
	}
}
