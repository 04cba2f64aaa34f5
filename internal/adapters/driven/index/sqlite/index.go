package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
	"github.com/perch-labs/perch-cli/internal/logger"
)

// Ensure Index implements the interface.
var _ driven.Index = (*Index)(nil)

// schema is applied on open. The fts table indexes name and content;
// path identifies the document and is not tokenised.
const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	path       TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	extra      TEXT NOT NULL DEFAULT '{}',
	indexed_at TEXT NOT NULL
);

CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts5(
	path UNINDEXED,
	name,
	content
);
`

// Index is a local search backend on SQLite FTS5 with bm25 ranking.
//
// It accepts hybrid configurations but cannot rank by embeddings, so a
// vector clause degrades to keyword-only ranking. Remote backends that
// understand the clause slot in behind the same port.
type Index struct {
	db   *sql.DB
	path string
}

// New creates a SQLite index at the specified data directory.
// If dataDir is empty, defaults to ~/.perch/data.
func New(dataDir string) (*Index, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".perch", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "index.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Index{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (i *Index) Close() error {
	return i.db.Close()
}

// Path returns the database file path.
func (i *Index) Path() string {
	return i.path
}

// Add inserts or updates a document. The path is the identity: adding
// an already-indexed path replaces its previous entry.
func (i *Index) Add(ctx context.Context, doc driven.IndexDocument) error {
	if doc.Path == "" {
		return fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	extra, err := json.Marshal(doc.Extra)
	if err != nil {
		return fmt.Errorf("encoding extra metadata: %w", err)
	}

	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents_fts WHERE path = ?`, doc.Path); err != nil {
		return fmt.Errorf("clearing previous entry: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id, path, name, extra, indexed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name = excluded.name,
			extra = excluded.extra,
			indexed_at = excluded.indexed_at`,
		uuid.NewString(), doc.Path, doc.Name, string(extra), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents_fts (path, name, content) VALUES (?, ?, ?)`,
		doc.Path, doc.Name, doc.Content,
	)
	if err != nil {
		return fmt.Errorf("indexing content: %w", err)
	}

	return tx.Commit()
}

// Remove deletes a document by path.
func (i *Index) Remove(ctx context.Context, path string) error {
	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE path = ?`, path)
	if err != nil {
		return fmt.Errorf("removing document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking removal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents_fts WHERE path = ?`, path); err != nil {
		return fmt.Errorf("removing index entry: %w", err)
	}

	return tx.Commit()
}

// Search executes a query or pagination refinement. Empty text browses
// the whole index ordered by indexing recency.
func (i *Index) Search(ctx context.Context, q driven.IndexQuery) (driven.IndexPage, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	if q.Hybrid.Semantic {
		logger.Debug("Vector clause requested (k=%d); local backend ranks by keyword only",
			q.Hybrid.NeighbourCount)
	}

	if strings.TrimSpace(q.Text) == "" {
		return i.browse(ctx, offset, limit)
	}
	return i.match(ctx, q.Text, offset, limit)
}

// browse lists all indexed documents, most recently indexed first.
func (i *Index) browse(ctx context.Context, offset, limit int) (driven.IndexPage, error) {
	var total int
	if err := i.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&total); err != nil {
		return driven.IndexPage{}, fmt.Errorf("counting documents: %w", err)
	}

	rows, err := i.db.QueryContext(ctx, `
		SELECT path, name, extra FROM documents
		ORDER BY indexed_at DESC, path ASC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return driven.IndexPage{}, fmt.Errorf("browsing documents: %w", err)
	}
	defer rows.Close()

	hits, err := scanHits(rows, nil)
	if err != nil {
		return driven.IndexPage{}, err
	}
	return driven.IndexPage{Hits: hits, TotalHits: total}, nil
}

// match runs an FTS query ranked by bm25.
func (i *Index) match(ctx context.Context, text string, offset, limit int) (driven.IndexPage, error) {
	expr := matchExpr(text)

	var total int
	err := i.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents_fts WHERE documents_fts MATCH ?`, expr,
	).Scan(&total)
	if err != nil {
		return driven.IndexPage{}, fmt.Errorf("counting matches: %w", err)
	}

	rows, err := i.db.QueryContext(ctx, `
		SELECT d.path, d.name, d.extra,
		       snippet(documents_fts, 2, '', '', '…', 12) AS snip
		FROM documents_fts
		JOIN documents d ON d.path = documents_fts.path
		WHERE documents_fts MATCH ?
		ORDER BY bm25(documents_fts)
		LIMIT ? OFFSET ?`, expr, limit, offset)
	if err != nil {
		return driven.IndexPage{}, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	snip := new(string)
	hits, err := scanHits(rows, snip)
	if err != nil {
		return driven.IndexPage{}, err
	}
	return driven.IndexPage{Hits: hits, TotalHits: total}, nil
}

// scanHits decodes result rows into schema-tolerant hits. When snip is
// non-nil a fourth snippet column is scanned and attached as an extra.
func scanHits(rows *sql.Rows, snip *string) ([]domain.Hit, error) {
	var hits []domain.Hit
	for rows.Next() {
		var path, name, extraJSON string

		var err error
		if snip != nil {
			err = rows.Scan(&path, &name, &extraJSON, snip)
		} else {
			err = rows.Scan(&path, &name, &extraJSON)
		}
		if err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}

		extra := make(map[string]any)
		if extraJSON != "" && extraJSON != "null" {
			if err := json.Unmarshal([]byte(extraJSON), &extra); err != nil {
				// Tolerate malformed metadata; the hit itself is fine.
				logger.Warn("Dropping malformed extra metadata for %s: %v", path, err)
				extra = make(map[string]any)
			}
		}
		if snip != nil && *snip != "" {
			extra["snippet"] = *snip
		}

		hits = append(hits, domain.Hit{Path: path, Name: name, Extra: extra})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading hits: %w", err)
	}
	return hits, nil
}

// matchExpr turns free text into a safe FTS5 expression: each term is
// quoted so user input can never be parsed as query syntax.
func matchExpr(text string) string {
	fields := strings.Fields(text)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(f, `"`, `""`)
		terms = append(terms, `"`+f+`"`)
	}
	return strings.Join(terms, " ")
}
