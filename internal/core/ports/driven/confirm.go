package driven

import "context"

// Confirmer presents a yes/no prompt for destructive operations.
//
// The decision is asynchronous: implementations may block the calling
// goroutine until the user answers or ctx is cancelled. A cancelled
// context counts as a decline.
type Confirmer interface {
	// Confirm asks the user the given question and reports their
	// choice. An error means the prompt could not be presented.
	Confirm(ctx context.Context, prompt string) (bool, error)
}
