package tui

import "errors"

var (
	// ErrMissingSession indicates no search session was provided.
	ErrMissingSession = errors.New("missing search session")

	// ErrMissingFileOperations indicates no file operations port was provided.
	ErrMissingFileOperations = errors.New("missing file operations")
)
