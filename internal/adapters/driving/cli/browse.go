package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui"
	"github.com/custodia-labs/gcpblocks/internal/logger"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"tui"},
	Short:   "Browse and run blocks in an interactive terminal UI",
	Long: `Launch the interactive catalog browser.

Filter the catalog, open a block, fill in its fields and run it. Results
are shown as formatted JSON.

Controls:
  /          - Filter (prefix with storage: or resourcemanager:)
  ↑/k, ↓/j   - Navigate
  Enter      - Open block / next field
  ctrl+r     - Run
  ctrl+p     - Preview request
  h          - History
  Esc        - Back
  ?          - Help
  q          - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{
		Registry: registry,
		Invoker:  invoker,
		History:  historyService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	stop := watchConfig(cmd.Context())
	defer stop()

	// Log lines would tear the alternate screen.
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(cmd.ErrOrStderr())

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// watchConfig reloads settings while a long-running command is active.
// The returned function stops the watcher.
func watchConfig(ctx context.Context) func() {
	if svcs == nil || svcs.ConfigWatcher == nil || svcs.Reload == nil {
		return func() {}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	done := make(chan struct{})
	var once sync.Once
	stop := func() { once.Do(func() { close(done) }) }

	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	watcher, reload := svcs.ConfigWatcher, svcs.Reload
	go func() {
		if err := watcher.Watch(done, reload); err != nil {
			logger.Warn("config watch stopped: %v", err)
		}
	}()

	return stop
}
