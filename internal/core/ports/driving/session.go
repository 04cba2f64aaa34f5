package driving

import (
	"context"

	"github.com/perch-labs/perch-cli/internal/core/domain"
)

// SearchSession is the single surface every view binds to. It owns the
// canonical query, pagination, and selection state; views read
// snapshots and feed events back through the mutation entry points.
//
// The request/outcome split supports event-loop UIs: a state change
// produces a tagged SearchRequest, the caller runs Fetch off the loop,
// and Apply on the loop installs the outcome only if it is still the
// latest (latest-query-wins).
type SearchSession interface {
	// SetQuery replaces the raw query text (live typing). No fetch
	// and no pagination or selection changes happen here.
	SetQuery(raw string)

	// Query returns the current query snapshot.
	Query() domain.Query

	// CommitQuery marks the query submitted: selection clears, the
	// page index resets to zero, and a fresh tagged request for page
	// zero is returned.
	CommitQuery() domain.SearchRequest

	// RequestPage asks for a page change. Out-of-range indexes are
	// clamped; if the clamped index equals the current page the
	// second return is false and nothing changes. Otherwise the
	// selection clears before the refinement request is returned.
	RequestPage(pageIndex int) (domain.SearchRequest, bool)

	// Refresh re-issues the current query and page under a new
	// sequence number, e.g. after the index changed underneath us.
	Refresh() domain.SearchRequest

	// Fetch executes a request against the index. Safe to call off
	// the event loop; it mutates no session state.
	Fetch(ctx context.Context, req domain.SearchRequest) domain.SearchOutcome

	// Apply installs an outcome. Stale outcomes (superseded sequence)
	// are dropped and false is returned. Failed outcomes keep the
	// prior result set visible and are reported via the notifier.
	Apply(outcome domain.SearchOutcome) bool

	// Hits returns the currently displayed result page.
	Hits() []domain.Hit

	// Pagination returns the current pagination snapshot.
	Pagination() domain.Pagination

	// Hover records the result row under the pointer.
	Hover(path string)

	// Unhover releases the hover on pointer-leave.
	Unhover()

	// HoverPath returns the hovered path, if any.
	HoverPath() (string, bool)

	// ToggleSelect flips a path's membership in the selected set.
	ToggleSelect(path string)

	// SelectedPaths returns the selected paths in sorted order.
	SelectedPaths() []string

	// ClearSelection empties the selected set, preserving hover.
	// Bound to escape and pointer-down outside the results region.
	ClearSelection()
}

// FileOperations routes validated file-action requests, gating
// destructive kinds behind confirmation.
type FileOperations interface {
	// Dispatch validates and executes a request. A declined
	// confirmation discards the request with no side effect and a
	// nil error.
	Dispatch(ctx context.Context, op domain.FileOperation) error
}
