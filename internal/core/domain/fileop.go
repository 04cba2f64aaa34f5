package domain

import "fmt"

// FileOpKind identifies a file action requested on a search result.
type FileOpKind string

const (
	// FileOpOpen opens the file in its default application.
	FileOpOpen FileOpKind = "open-file"

	// FileOpOpenFolder reveals the file's containing folder.
	FileOpOpenFolder FileOpKind = "open-folder"

	// FileOpDelete removes the file from disk. Destructive.
	FileOpDelete FileOpKind = "delete"

	// FileOpForget removes the file from the index, leaving the file
	// on disk. Destructive (the index entry is not recoverable).
	FileOpForget FileOpKind = "forget"
)

// Destructive reports whether the kind requires user confirmation
// before it may execute.
func (k FileOpKind) Destructive() bool {
	return k == FileOpDelete || k == FileOpForget
}

// Valid reports whether the kind is one of the known operations.
func (k FileOpKind) Valid() bool {
	switch k {
	case FileOpOpen, FileOpOpenFolder, FileOpDelete, FileOpForget:
		return true
	}
	return false
}

// FileOperation is a request to act on a single file. It is built per
// user action and consumed immediately by the dispatcher, never stored.
type FileOperation struct {
	// Path is the target file. Must be non-empty.
	Path string

	// Kind is the requested action.
	Kind FileOpKind
}

// Validate checks the request is well-formed.
func (op FileOperation) Validate() error {
	if op.Path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidInput)
	}
	if !op.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedKind, op.Kind)
	}
	return nil
}

// ConfirmPrompt returns the user-facing question for destructive kinds.
func (op FileOperation) ConfirmPrompt() string {
	switch op.Kind {
	case FileOpDelete:
		return fmt.Sprintf("Delete %s from disk?", op.Path)
	case FileOpForget:
		return fmt.Sprintf("Remove %s from the index?", op.Path)
	default:
		return ""
	}
}
