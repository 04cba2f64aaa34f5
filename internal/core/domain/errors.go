package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedKind indicates an unknown file-operation kind.
	ErrUnsupportedKind = errors.New("unsupported operation kind")

	// ErrIndexUnavailable indicates the search index is not configured.
	ErrIndexUnavailable = errors.New("search index unavailable")

	// ErrFileAccessUnavailable indicates the file-access collaborator
	// is not configured. Result actions are disabled.
	ErrFileAccessUnavailable = errors.New("file access unavailable")

	// ErrPermission indicates the platform refused a file operation.
	ErrPermission = errors.New("permission denied")
)
