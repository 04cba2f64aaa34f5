package mcp

import "errors"

var (
	// ErrMissingSession indicates no search session was provided.
	ErrMissingSession = errors.New("missing search session")
)
