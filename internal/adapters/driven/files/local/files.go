// Package local implements the file-access port with platform commands.
package local

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure FileAccess implements the interface.
var _ driven.FileAccess = (*FileAccess)(nil)

// FileAccess opens, reveals, and deletes files on the local machine.
type FileAccess struct {
	// run executes a platform command. Swappable for tests.
	run func(ctx context.Context, name string, args ...string) error
}

// New creates a local file-access adapter.
func New() *FileAccess {
	return &FileAccess{
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// OpenFile opens the file in its default application.
func (f *FileAccess) OpenFile(ctx context.Context, path string) error {
	if err := exists(path); err != nil {
		return err
	}
	return f.launch(ctx, path)
}

// OpenFolder reveals the file's containing folder.
func (f *FileAccess) OpenFolder(ctx context.Context, path string) error {
	if err := exists(path); err != nil {
		return err
	}
	return f.launch(ctx, filepath.Dir(path))
}

// DeleteFile removes the file from disk.
func (f *FileAccess) DeleteFile(_ context.Context, path string) error {
	if err := exists(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: %s", domain.ErrPermission, path)
		}
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	return nil
}

// launch hands a path to the platform's opener.
func (f *FileAccess) launch(ctx context.Context, target string) error {
	var name string
	var args []string

	switch runtime.GOOS {
	case osDarwin:
		name = "open"
		args = []string{target}
	case osLinux:
		name = "xdg-open"
		args = []string{target}
	case osWindows:
		name = "cmd"
		args = []string{"/c", "start", "", target}
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	if err := f.run(ctx, name, args...); err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	return nil
}

// exists maps stat failures onto the domain error taxonomy.
func exists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return fmt.Errorf("%w: %s", domain.ErrPermission, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}
