package driven

import (
	"context"

	"github.com/perch-labs/perch-cli/internal/core/domain"
)

// IndexQuery is a single query/refinement request to the backend.
type IndexQuery struct {
	// Text is the trimmed query text. Empty browses the index.
	Text string

	// Hybrid configures the optional vector clause.
	Hybrid domain.HybridConfig

	// Offset is the number of hits to skip.
	Offset int

	// Limit is the maximum number of hits to return.
	Limit int
}

// IndexPage is the backend's answer to an IndexQuery.
type IndexPage struct {
	// Hits is the requested page of results.
	Hits []domain.Hit

	// TotalHits is the total match count across all pages.
	TotalHits int
}

// Index provides query and membership operations on the search backend.
// Backed locally by SQLite FTS5 with bm25 ranking.
type Index interface {
	// Search executes a query or pagination refinement.
	Search(ctx context.Context, q IndexQuery) (IndexPage, error)

	// Add inserts or updates a document in the index.
	Add(ctx context.Context, doc IndexDocument) error

	// Remove deletes a document from the index by path.
	// Removing an unknown path returns domain.ErrNotFound.
	Remove(ctx context.Context, path string) error

	// Close releases resources.
	Close() error
}

// IndexDocument is a document submitted for indexing.
type IndexDocument struct {
	// Path is the file location and the document's identity.
	Path string

	// Name is the display name.
	Name string

	// Content is the extracted text.
	Content string

	// Extra holds optional extraction metadata (size, modified,
	// mime), stored alongside the document and echoed back in hits.
	Extra map[string]any
}
