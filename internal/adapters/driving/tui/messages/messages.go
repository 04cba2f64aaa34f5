// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/perch-labs/perch-cli/internal/core/domain"
)

// SearchCompleted carries a search outcome back to the model. The
// outcome's sequence tag decides at Apply time whether it still wins.
type SearchCompleted struct {
	Outcome domain.SearchOutcome
}

// Notice carries a user-facing notification to the status bar.
type Notice struct {
	Notification domain.Notification
}

// IndexChanged signals the index was modified underneath the session,
// e.g. by the filesystem watcher. The model refreshes in response.
type IndexChanged struct{}

// OperationDone signals a file operation finished. Err is nil both on
// success and when the user declined the confirmation.
type OperationDone struct {
	Op  domain.FileOperation
	Err error
}

// ConfirmRequested asks the model to render a confirmation overlay.
// The answer is written to Reply, unblocking the dispatcher.
type ConfirmRequested struct {
	Prompt string
	Reply  chan<- bool
}

// Quit signals the application should exit.
type Quit struct{}
