package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/perch-labs/perch-cli/internal/adapters/driven/watch"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui"
	"github.com/perch-labs/perch-cli/internal/core/services"
	"github.com/perch-labs/perch-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Perch.

The TUI provides a visual interface for searching your indexed files,
with multi-selection, pagination, and file actions.

Controls:
  ↑/k, ↓/j - Move the cursor
  ←/h, →/l - Change result page
  Space    - Toggle selection
  Enter    - Search / Open actions
  Esc      - Clear selection / Back
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if indexPort == nil {
		return errors.New("index not configured")
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// The TUI's own notifier and prompter back the session and
	// dispatcher, so confirmations and notices render in the UI.
	notifier := tui.NewNotifier()
	prompter := tui.NewPrompter()

	session := services.NewSession(indexPort, notifier, settings)
	dispatcher := services.NewDispatcher(fileAccess, indexPort, prompter, notifier)
	dispatcher.OnRemoved(session.RemoveHit)

	ports := tui.NewPorts(session, dispatcher)
	ports.Notifier = notifier
	ports.Prompter = prompter

	if settings.Watch {
		refresh, closeWatch := startWatcher(ctx)
		if closeWatch != nil {
			defer closeWatch()
		}
		ports.Refresh = refresh
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// startWatcher watches the remembered roots and pumps change events
// into the index, ticking the returned channel after every change so
// the session can refresh. Returns nils when nothing can be watched.
func startWatcher(ctx context.Context) (<-chan struct{}, func()) {
	if configStore == nil || scanner == nil {
		return nil, nil
	}

	roots := configStore.GetStringSlice(watchRootsKey)
	if len(roots) == 0 {
		return nil, nil
	}

	w, err := watch.New()
	if err != nil {
		logger.Warn("Watcher unavailable: %v", err)
		return nil, nil
	}

	watching := 0
	for _, root := range roots {
		if err := w.AddRoot(root); err != nil {
			logger.Warn("Cannot watch %s: %v", root, err)
			continue
		}
		watching++
	}
	if watching == 0 {
		_ = w.Close()
		return nil, nil
	}

	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("Watcher stopped: %v", err)
		}
	}()

	refresh := make(chan struct{}, 1)
	go func() {
		for ev := range w.Events() {
			switch ev.Op {
			case watch.Changed:
				if err := scanner.IndexFile(ctx, ev.Path); err != nil {
					logger.Debug("Re-index %s: %v", ev.Path, err)
				}
			case watch.Removed:
				if err := scanner.RemoveFile(ctx, ev.Path); err != nil {
					logger.Debug("Remove %s: %v", ev.Path, err)
				}
			}

			// Coalesce ticks; one pending refresh is enough.
			select {
			case refresh <- struct{}{}:
			default:
			}
		}
	}()

	return refresh, func() { _ = w.Close() }
}
