package driven

import "context"

// FileAccess performs platform file operations on behalf of the
// dispatcher. Each call returns a typed failure (wrapping
// domain.ErrNotFound or domain.ErrPermission) on error.
type FileAccess interface {
	// OpenFile opens the file in its default application.
	OpenFile(ctx context.Context, path string) error

	// OpenFolder reveals the file's containing folder.
	OpenFolder(ctx context.Context, path string) error

	// DeleteFile removes the file from disk.
	DeleteFile(ctx context.Context, path string) error
}
