// Package tui provides an interactive terminal user interface for perch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/perch-labs/perch-cli/internal/core/ports/driving"
)

// Ports aggregates everything the TUI needs from the core.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session is the search session the view binds to.
	Session driving.SearchSession

	// FileOps routes file-action requests.
	FileOps driving.FileOperations

	// Prompter surfaces confirmation requests from the dispatcher.
	// Optional; without it destructive operations are declined upstream.
	Prompter *Prompter

	// Notifier surfaces core notifications on the status bar. Optional.
	Notifier *Notifier

	// Refresh delivers a tick whenever the index changed underneath the
	// session, e.g. from the filesystem watcher. Optional.
	Refresh <-chan struct{}
}

// NewPorts creates a Ports aggregate with the required services.
func NewPorts(session driving.SearchSession, fileOps driving.FileOperations) *Ports {
	return &Ports{
		Session: session,
		FileOps: fileOps,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSession
	}
	if p.FileOps == nil {
		return ErrMissingFileOperations
	}
	return nil
}
