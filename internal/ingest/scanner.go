// Package ingest walks directory roots and feeds files into the index.
//
// Every file is indexed by name; textual content is extracted for
// known text formats under the size cap. Binary formats still surface
// in name searches.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
	"github.com/perch-labs/perch-cli/internal/logger"
)

// maxContentSize caps how much file content is read for indexing.
const maxContentSize = 4 << 20 // 4 MiB

// textExtensions are formats whose content is worth tokenising as-is.
var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".markdown": true, ".rst": true,
	".csv": true, ".tsv": true, ".log": true,
	".json": true, ".yaml": true, ".yml": true, ".toml": true, ".ini": true,
	".xml": true, ".html": true, ".htm": true,
	".go": true, ".py": true, ".js": true, ".ts": true, ".rb": true,
	".rs": true, ".java": true, ".c": true, ".h": true, ".cpp": true,
	".sh": true, ".sql": true,
}

// Scanner ingests files into the search index.
type Scanner struct {
	index driven.Index
}

// NewScanner creates a scanner over the given index.
func NewScanner(index driven.Index) *Scanner {
	return &Scanner{index: index}
}

// ScanRoot walks a directory tree and indexes every regular file.
// Hidden directories are skipped. Returns the number of files indexed.
func (s *Scanner) ScanRoot(ctx context.Context, root string) (int, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return 0, fmt.Errorf("resolving root: %w", err)
	}

	count := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Skipping unreadable path %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if isHidden(d.Name()) && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if isHidden(d.Name()) || !d.Type().IsRegular() {
			return nil
		}

		if err := s.IndexFile(ctx, path); err != nil {
			logger.Warn("Failed to index %s: %v", path, err)
			return nil
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("scanning %s: %w", root, err)
	}

	logger.Info("Indexed %d files under %s", count, root)
	return count, nil
}

// IndexFile indexes a single file. Also invoked for watcher change
// events so edits re-index in place.
func (s *Scanner) IndexFile(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	if info.IsDir() {
		return nil
	}

	doc := driven.IndexDocument{
		Path:    path,
		Name:    filepath.Base(path),
		Content: readContent(path, info.Size()),
		Extra: map[string]any{
			"size":     info.Size(),
			"modified": info.ModTime().UTC().Format(time.RFC3339),
		},
	}
	if m := mime.TypeByExtension(filepath.Ext(path)); m != "" {
		doc.Extra["mime"] = m
	}

	return s.index.Add(ctx, doc)
}

// RemoveFile drops a path from the index, tolerating paths that were
// never indexed.
func (s *Scanner) RemoveFile(ctx context.Context, path string) error {
	err := s.index.Remove(ctx, path)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// readContent returns the file's text for indexable formats, empty
// otherwise. Read failures degrade to name-only indexing.
func readContent(path string, size int64) string {
	if size > maxContentSize {
		return ""
	}
	if !textExtensions[strings.ToLower(filepath.Ext(path))] {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Cannot read %s: %v", path, err)
		return ""
	}
	return string(data)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
