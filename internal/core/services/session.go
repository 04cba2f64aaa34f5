package services

import (
	"context"
	"sync"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
	"github.com/perch-labs/perch-cli/internal/core/ports/driving"
	"github.com/perch-labs/perch-cli/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SearchSession = (*Session)(nil)

// Session is the search session controller. It owns the canonical
// query, pagination, and selection state; every mutation flows through
// its methods and views only read snapshots.
//
// State transitions happen on the caller's event loop. Fetch is the
// one method safe to run concurrently: it touches no session state, so
// an in-flight request never blocks new input. Stale responses are
// discarded by sequence number when applied.
type Session struct {
	mu       sync.Mutex
	index    driven.Index
	notifier driven.Notifier

	query      domain.Query
	committed  domain.Query
	pag        domain.Pagination
	sel        *domain.Selection
	hits       []domain.Hit
	neighbours int

	// seq is the latest issued request number. Outcomes tagged with
	// anything older are ignored on arrival.
	seq uint64
}

// NewSession creates a session controller over the given index.
// The notifier may be nil; failures are then only logged.
func NewSession(index driven.Index, notifier driven.Notifier, settings domain.Settings) *Session {
	settings = settings.WithDefaults()
	return &Session{
		index:      index,
		notifier:   notifier,
		pag:        domain.NewPagination(settings.PageSize, settings.CapLimit),
		sel:        domain.NewSelection(),
		neighbours: settings.NeighbourCount,
	}
}

// SetQuery replaces the raw query text. Live typing only: pagination
// and selection stay put until the query is committed.
func (s *Session) SetQuery(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = domain.NewQuery(raw)
}

// Query returns the current query snapshot.
func (s *Session) Query() domain.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// CommitQuery marks the query submitted and returns a tagged request
// for its first page. Selection clears and the page index resets
// before the request is built, so stale state never renders against
// the new results.
func (s *Session) CommitQuery() domain.SearchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.committed = s.query
	s.sel.Clear()
	s.pag.PageIndex = 0

	logger.Section("Query Commit")
	logger.Debug("Query: %q", s.committed.Trimmed())

	return s.nextRequest()
}

// RequestPage moves to another result page. The index is clamped into
// the valid page domain; a request that lands on the current page is a
// no-op and returns false. Selection clears before the refinement is
// issued.
func (s *Session) RequestPage(pageIndex int) (domain.SearchRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clamped := s.pag.Clamp(pageIndex)
	if clamped != pageIndex {
		logger.Debug("Page request %d clamped to %d", pageIndex, clamped)
	}
	if clamped == s.pag.PageIndex {
		return domain.SearchRequest{}, false
	}

	s.sel.Clear()
	s.pag.PageIndex = clamped

	return s.nextRequest(), true
}

// Refresh re-issues the current query and page under a new sequence
// number. Used when the index changed underneath the session.
func (s *Session) Refresh() domain.SearchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextRequest()
}

// nextRequest builds a tagged request for the committed query at the
// current page. Caller must hold the lock.
func (s *Session) nextRequest() domain.SearchRequest {
	s.seq++
	return domain.SearchRequest{
		Seq:    s.seq,
		Text:   s.committed.Trimmed(),
		Hybrid: domain.ResolveHybridK(s.committed, s.neighbours),
		Offset: s.pag.Offset(),
		Limit:  s.pag.PageSize,
	}
}

// Fetch executes a request against the index. It mutates no session
// state, so callers may run it on any goroutine while the event loop
// stays responsive.
func (s *Session) Fetch(ctx context.Context, req domain.SearchRequest) domain.SearchOutcome {
	if s.index == nil {
		return domain.SearchOutcome{Request: req, Err: domain.ErrIndexUnavailable}
	}

	page, err := s.index.Search(ctx, driven.IndexQuery{
		Text:   req.Text,
		Hybrid: req.Hybrid,
		Offset: req.Offset,
		Limit:  req.Limit,
	})
	if err != nil {
		logger.Warn("Search failed (seq %d): %v", req.Seq, err)
		return domain.SearchOutcome{Request: req, Err: err}
	}

	logger.Debug("Search seq %d: %d hits of %d total", req.Seq, len(page.Hits), page.TotalHits)
	return domain.SearchOutcome{Request: req, Hits: page.Hits, TotalHits: page.TotalHits}
}

// Apply installs an outcome if it is still the latest issued request.
// Superseded outcomes are dropped silently; failed outcomes leave the
// prior result set visible and surface through the notifier.
func (s *Session) Apply(outcome domain.SearchOutcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if outcome.Request.Seq != s.seq {
		logger.Debug("Dropping stale outcome: seq %d, latest %d", outcome.Request.Seq, s.seq)
		return false
	}

	if outcome.Err != nil {
		s.notify(domain.SeverityError, "Search failed", outcome.Err.Error())
		return false
	}

	s.hits = outcome.Hits
	s.pag.TotalHits = outcome.TotalHits
	// The total may have shrunk past the current page; snap back in.
	s.pag.PageIndex = s.pag.Clamp(s.pag.PageIndex)
	return true
}

// Hits returns the currently displayed result page.
func (s *Session) Hits() []domain.Hit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits
}

// Pagination returns the current pagination snapshot.
func (s *Session) Pagination() domain.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pag
}

// Hover records the result row under the pointer.
func (s *Session) Hover(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Hover(path)
}

// Unhover releases the hover on pointer-leave.
func (s *Session) Unhover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Unhover()
}

// HoverPath returns the hovered path, if any.
func (s *Session) HoverPath() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.HoverPath()
}

// ToggleSelect flips a path's membership in the selected set.
func (s *Session) ToggleSelect(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Toggle(path)
}

// SelectedPaths returns the selected paths in sorted order.
func (s *Session) SelectedPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Selected()
}

// ClearSelection empties the selected set, preserving hover.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Clear()
}

// RemoveHit drops a path from the displayed page after a successful
// delete or forget, without waiting for a refresh round trip.
func (s *Session) RemoveHit(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy rather than compact in place: Hits snapshots handed to
	// views may still be rendering on another goroutine.
	kept := make([]domain.Hit, 0, len(s.hits))
	for _, h := range s.hits {
		if h.Path != path {
			kept = append(kept, h)
		}
	}
	if len(kept) != len(s.hits) && s.pag.TotalHits > 0 {
		s.pag.TotalHits--
	}
	s.hits = kept
	s.sel.Deselect(path)
}

func (s *Session) notify(severity domain.Severity, title, message string) {
	if s.notifier == nil {
		logger.Warn("%s: %s", title, message)
		return
	}
	s.notifier.Notify(severity, title, message)
}
