package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func addDoc(t *testing.T, idx *Index, path, name, content string) {
	t.Helper()
	require.NoError(t, idx.Add(context.Background(), driven.IndexDocument{
		Path:    path,
		Name:    name,
		Content: content,
		Extra:   map[string]any{"mime": "text/plain"},
	}))
}

func TestIndex_AddAndSearch(t *testing.T) {
	idx := newTestIndex(t)
	addDoc(t, idx, "/docs/budget.txt", "budget.txt", "quarterly budget report for finance")
	addDoc(t, idx, "/docs/notes.txt", "notes.txt", "meeting notes about the offsite")

	page, err := idx.Search(context.Background(), driven.IndexQuery{Text: "budget", Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, page.TotalHits)
	require.Len(t, page.Hits, 1)
	assert.Equal(t, "/docs/budget.txt", page.Hits[0].Path)
	assert.Equal(t, "budget.txt", page.Hits[0].Name)
	assert.Equal(t, "text/plain", page.Hits[0].Mime())
}

func TestIndex_EmptyQueryBrowsesAll(t *testing.T) {
	idx := newTestIndex(t)
	addDoc(t, idx, "/a.txt", "a.txt", "alpha")
	addDoc(t, idx, "/b.txt", "b.txt", "beta")
	addDoc(t, idx, "/c.txt", "c.txt", "gamma")

	page, err := idx.Search(context.Background(), driven.IndexQuery{Text: "", Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalHits)
	assert.Len(t, page.Hits, 3)
}

func TestIndex_Pagination(t *testing.T) {
	idx := newTestIndex(t)
	addDoc(t, idx, "/a.txt", "a.txt", "common term alpha")
	addDoc(t, idx, "/b.txt", "b.txt", "common term beta")
	addDoc(t, idx, "/c.txt", "c.txt", "common term gamma")

	first, err := idx.Search(context.Background(), driven.IndexQuery{Text: "common", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, first.TotalHits)
	assert.Len(t, first.Hits, 2)

	second, err := idx.Search(context.Background(), driven.IndexQuery{Text: "common", Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, second.TotalHits)
	assert.Len(t, second.Hits, 1)

	// The pages are disjoint.
	assert.NotEqual(t, first.Hits[0].Path, second.Hits[0].Path)
	assert.NotEqual(t, first.Hits[1].Path, second.Hits[0].Path)
}

func TestIndex_ReAddReplacesDocument(t *testing.T) {
	idx := newTestIndex(t)
	addDoc(t, idx, "/a.txt", "a.txt", "original words")
	addDoc(t, idx, "/a.txt", "a.txt", "replacement text")

	gone, err := idx.Search(context.Background(), driven.IndexQuery{Text: "original", Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, gone.TotalHits)

	found, err := idx.Search(context.Background(), driven.IndexQuery{Text: "replacement", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, found.TotalHits)

	all, err := idx.Search(context.Background(), driven.IndexQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, all.TotalHits, "re-adding must not duplicate")
}

func TestIndex_Remove(t *testing.T) {
	idx := newTestIndex(t)
	addDoc(t, idx, "/a.txt", "a.txt", "alpha content")

	require.NoError(t, idx.Remove(context.Background(), "/a.txt"))

	page, err := idx.Search(context.Background(), driven.IndexQuery{Text: "alpha", Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, page.TotalHits)
}

func TestIndex_RemoveUnknownPath(t *testing.T) {
	idx := newTestIndex(t)

	err := idx.Remove(context.Background(), "/nope.txt")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIndex_VectorClauseDegradesToKeyword(t *testing.T) {
	idx := newTestIndex(t)
	addDoc(t, idx, "/a.txt", "a.txt", "budget figures")

	page, err := idx.Search(context.Background(), driven.IndexQuery{
		Text:   "budget",
		Hybrid: domain.ResolveHybrid(domain.NewQuery("budget")),
		Limit:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalHits)
}

func TestIndex_QuerySyntaxIsEscaped(t *testing.T) {
	idx := newTestIndex(t)
	addDoc(t, idx, "/a.txt", "a.txt", "plain text")

	// FTS5 operators and stray quotes must not break the query.
	for _, text := range []string{`AND OR NOT`, `"unbalanced`, `col:value`, `(paren`} {
		_, err := idx.Search(context.Background(), driven.IndexQuery{Text: text, Limit: 10})
		assert.NoError(t, err, "query %q", text)
	}
}

func TestIndex_SnippetAttached(t *testing.T) {
	idx := newTestIndex(t)
	addDoc(t, idx, "/a.txt", "a.txt", "the quarterly budget report is ready for review")

	page, err := idx.Search(context.Background(), driven.IndexQuery{Text: "budget", Limit: 10})
	require.NoError(t, err)

	require.Len(t, page.Hits, 1)
	assert.Contains(t, page.Hits[0].Snippet(), "budget")
}

func TestIndex_AddEmptyPathRejected(t *testing.T) {
	idx := newTestIndex(t)

	err := idx.Add(context.Background(), driven.IndexDocument{Name: "x"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
