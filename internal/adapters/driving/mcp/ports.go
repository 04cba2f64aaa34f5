package mcp

import (
	"github.com/perch-labs/perch-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session provides search capabilities.
	Session driving.SearchSession

	// FileOps routes file-action requests. Optional; without it the
	// forget tool reports an error.
	FileOps driving.FileOperations
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSession
	}
	return nil
}
