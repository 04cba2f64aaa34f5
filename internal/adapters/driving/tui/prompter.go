package tui

import (
	"context"

	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
)

// Ensure Prompter implements the interface.
var _ driven.Confirmer = (*Prompter)(nil)

// ConfirmRequest is a confirmation handed to the event loop. The
// answer is written to Reply exactly once.
type ConfirmRequest struct {
	Prompt string
	Reply  chan bool
}

// Prompter bridges the dispatcher's synchronous Confirm call into the
// Bubbletea event loop. Confirm blocks the calling goroutine (a tea
// command, never the loop itself) until the overlay answers or the
// context is cancelled.
type Prompter struct {
	requests chan ConfirmRequest
}

// NewPrompter creates an unbuffered prompter.
func NewPrompter() *Prompter {
	return &Prompter{requests: make(chan ConfirmRequest)}
}

// Confirm implements driven.Confirmer.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	req := ConfirmRequest{Prompt: prompt, Reply: make(chan bool, 1)}

	select {
	case p.requests <- req:
	case <-ctx.Done():
		return false, ctx.Err()
	}

	select {
	case answer := <-req.Reply:
		return answer, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Requests returns the stream of pending confirmations.
func (p *Prompter) Requests() <-chan ConfirmRequest {
	return p.requests
}
