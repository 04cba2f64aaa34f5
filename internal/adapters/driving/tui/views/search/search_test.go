package search

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/messages"
	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
	"github.com/perch-labs/perch-cli/internal/core/services"
)

type stubIndex struct {
	hits  []domain.Hit
	total int
	err   error
}

func (s *stubIndex) Search(ctx context.Context, q driven.IndexQuery) (driven.IndexPage, error) {
	if s.err != nil {
		return driven.IndexPage{}, s.err
	}
	return driven.IndexPage{Hits: s.hits, TotalHits: s.total}, nil
}

func (s *stubIndex) Add(ctx context.Context, doc driven.IndexDocument) error { return nil }
func (s *stubIndex) Remove(ctx context.Context, path string) error           { return nil }
func (s *stubIndex) Close() error                                            { return nil }

type recordingFileOps struct {
	ops []domain.FileOperation
	err error
}

func (r *recordingFileOps) Dispatch(ctx context.Context, op domain.FileOperation) error {
	r.ops = append(r.ops, op)
	return r.err
}

func hitsOf(n int) []domain.Hit {
	hits := make([]domain.Hit, n)
	for i := range hits {
		hits[i] = domain.Hit{
			Path: fmt.Sprintf("/docs/file-%d.txt", i),
			Name: fmt.Sprintf("file-%d.txt", i),
		}
	}
	return hits
}

func newTestView(idx *stubIndex, fileOps *recordingFileOps) *View {
	session := services.NewSession(idx, nil, domain.DefaultSettings())
	v := NewView(nil, nil, session, fileOps)
	v.SetDimensions(120, 40)
	return v
}

func press(v *View, msg tea.KeyMsg) (*View, tea.Cmd) {
	return v.Update(msg)
}

// runSearch types a query, commits it, and applies the outcome.
func runSearch(t *testing.T, v *View, query string) *View {
	t.Helper()

	v, _ = press(v, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(query)})
	v, cmd := press(v, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	completed, ok := msg.(messages.SearchCompleted)
	require.True(t, ok)

	v, _ = v.Update(completed)
	return v
}

func TestNewView(t *testing.T) {
	v := newTestView(&stubIndex{}, &recordingFileOps{})

	require.NotNil(t, v)
	assert.True(t, v.InputFocused())
	assert.True(t, v.Ready())
}

func TestView_CommitQueryShowsResults(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(3), total: 3}
	v := newTestView(idx, &recordingFileOps{})

	v = runSearch(t, v, "file")

	assert.False(t, v.InputFocused())
	view := v.View()
	assert.Contains(t, view, "file-0.txt")
	assert.Contains(t, view, "3 results")
}

func TestView_StaleOutcomeIgnored(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(2), total: 2}
	v := newTestView(idx, &recordingFileOps{})

	// First commit's outcome is captured but applied after a second
	// commit supersedes it.
	v, _ = press(v, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one")})
	v, cmd1 := press(v, tea.KeyMsg{Type: tea.KeyEnter})
	stale := cmd1()

	v, _ = press(v, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	v, _ = press(v, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("two")})
	v, cmd2 := press(v, tea.KeyMsg{Type: tea.KeyEnter})
	fresh := cmd2()

	v, _ = v.Update(fresh)
	v, _ = v.Update(stale)

	// The fresh result set is still displayed.
	assert.Contains(t, v.View(), "2 results")
}

func TestView_SpaceTogglesSelection(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(3), total: 3}
	v := newTestView(idx, &recordingFileOps{})
	v = runSearch(t, v, "file")

	v, _ = press(v, tea.KeyMsg{Type: tea.KeySpace})

	view := v.View()
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "1 selected")

	v, _ = press(v, tea.KeyMsg{Type: tea.KeySpace})
	assert.NotContains(t, v.View(), "1 selected")
}

func TestView_EscClearsSelectionThenReturnsToInput(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(3), total: 3}
	v := newTestView(idx, &recordingFileOps{})
	v = runSearch(t, v, "file")

	v, _ = press(v, tea.KeyMsg{Type: tea.KeySpace})
	require.Contains(t, v.View(), "1 selected")

	// First esc clears the selection, keeping results mode.
	v, _ = press(v, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.InputFocused())
	assert.NotContains(t, v.View(), "1 selected")

	// Second esc returns to the input.
	v, _ = press(v, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, v.InputFocused())
}

func TestView_PageNavigation(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(24), total: 100}
	v := newTestView(idx, &recordingFileOps{})
	v = runSearch(t, v, "file")

	require.Contains(t, v.View(), "Page 1 of 5")

	v, cmd := press(v, tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())

	assert.Contains(t, v.View(), "Page 2 of 5")
}

func TestView_PrevPageAtStartIsNoOp(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(24), total: 100}
	v := newTestView(idx, &recordingFileOps{})
	v = runSearch(t, v, "file")

	_, cmd := press(v, tea.KeyMsg{Type: tea.KeyLeft})

	assert.Nil(t, cmd)
}

func TestView_PagerHiddenForSinglePage(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(3), total: 3}
	v := newTestView(idx, &recordingFileOps{})
	v = runSearch(t, v, "file")

	assert.NotContains(t, v.View(), "Page")
}

func TestView_ActionMenuOpensAndCancels(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(3), total: 3}
	v := newTestView(idx, &recordingFileOps{})
	v = runSearch(t, v, "file")

	v, _ = press(v, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, v.MenuOpen())
	assert.Contains(t, v.View(), "Open folder")

	v, _ = press(v, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.MenuOpen())
}

func TestView_ActionMenuDispatchesOpen(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(3), total: 3}
	fileOps := &recordingFileOps{}
	v := newTestView(idx, fileOps)
	v = runSearch(t, v, "file")

	v, _ = press(v, tea.KeyMsg{Type: tea.KeyEnter})
	v, cmd := press(v, tea.KeyMsg{Type: tea.KeyEnter}) // first entry: Open
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(messages.OperationDone)
	require.True(t, ok)
	assert.NoError(t, done.Err)

	require.Len(t, fileOps.ops, 1)
	assert.Equal(t, domain.FileOpOpen, fileOps.ops[0].Kind)
	assert.Equal(t, "/docs/file-0.txt", fileOps.ops[0].Path)
}

func TestView_ActionMenuTargetsSelection(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(3), total: 3}
	fileOps := &recordingFileOps{}
	v := newTestView(idx, fileOps)
	v = runSearch(t, v, "file")

	// Select two rows, then act on the selection.
	v, _ = press(v, tea.KeyMsg{Type: tea.KeySpace})
	v, _ = press(v, tea.KeyMsg{Type: tea.KeyDown})
	v, _ = press(v, tea.KeyMsg{Type: tea.KeySpace})

	v, _ = press(v, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, v.MenuOpen())
	_, cmd := press(v, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	assert.Len(t, fileOps.ops, 2)
}

func TestView_ConfirmOverlayAnswers(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(1), total: 1}
	v := newTestView(idx, &recordingFileOps{})
	v = runSearch(t, v, "file")

	reply := make(chan bool, 1)
	v, _ = v.Update(messages.ConfirmRequested{Prompt: "Delete /x?", Reply: reply})
	require.True(t, v.ConfirmOpen())
	assert.Contains(t, v.View(), "Delete /x?")

	v, _ = press(v, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

	assert.False(t, v.ConfirmOpen())
	assert.True(t, <-reply)
}

func TestView_ConfirmOverlayDeclines(t *testing.T) {
	v := newTestView(&stubIndex{}, &recordingFileOps{})
	v.SetDimensions(120, 40)

	reply := make(chan bool, 1)
	v, _ = v.Update(messages.ConfirmRequested{Prompt: "Delete /x?", Reply: reply})

	v, _ = press(v, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, v.ConfirmOpen())
	assert.False(t, <-reply)
}

func TestView_NoticeShownOnStatusBar(t *testing.T) {
	v := newTestView(&stubIndex{}, &recordingFileOps{})

	v, _ = v.Update(messages.Notice{Notification: domain.Notification{
		Severity: domain.SeveritySuccess,
		Title:    "Deleted",
		Message:  "/docs/file-0.txt",
	}})

	assert.Contains(t, v.View(), "Deleted")
}

func TestView_SearchErrorKeepsPriorResults(t *testing.T) {
	idx := &stubIndex{hits: hitsOf(2), total: 2}
	v := newTestView(idx, &recordingFileOps{})
	v = runSearch(t, v, "file")
	require.Contains(t, v.View(), "2 results")

	idx.err = domain.ErrIndexUnavailable
	v, _ = press(v, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	v = runSearch(t, v, "other")

	assert.Contains(t, v.View(), "file-0.txt")
}
