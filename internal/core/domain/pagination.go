package domain

// Pagination defaults. Both are UI policy, overridable via Settings:
// the cap mirrors the maximum browsable depth index backends enforce,
// so offsets past it are never requested.
const (
	DefaultPageSize = 24
	DefaultCapLimit = 1000
)

// PageBounds is the derived page-index domain for a result set.
type PageBounds struct {
	// CappedTotal is the hit count actually exposed to pagination.
	CappedTotal int

	// TotalPages is the number of pages over the capped total.
	// Zero only when CappedTotal is zero.
	TotalPages int
}

// ComputeBounds derives the page bounds for a hit count.
// Non-positive pageSize and capLimit fall back to the defaults so a
// misconfigured store can never divide by zero.
func ComputeBounds(totalHits, pageSize, capLimit int) PageBounds {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if capLimit <= 0 {
		capLimit = DefaultCapLimit
	}
	if totalHits < 0 {
		totalHits = 0
	}

	capped := totalHits
	if capped > capLimit {
		capped = capLimit
	}

	return PageBounds{
		CappedTotal: capped,
		TotalPages:  (capped + pageSize - 1) / pageSize,
	}
}

// ClampRequestedPage bounds a zero-based page request made before any
// hit count is known. The last requestable page is the last page of a
// cap-sized result set, so the resulting offset never reaches past the
// cap window.
func ClampRequestedPage(pageIndex, pageSize, capLimit int) int {
	if capLimit <= 0 {
		capLimit = DefaultCapLimit
	}
	last := ComputeBounds(capLimit, pageSize, capLimit).TotalPages - 1
	if pageIndex < 0 {
		return 0
	}
	if pageIndex > last {
		return last
	}
	return pageIndex
}

// Pagination tracks the current page over a capped result count.
type Pagination struct {
	// PageSize is the fixed number of hits per page.
	PageSize int

	// PageIndex is the current zero-based page.
	PageIndex int

	// TotalHits is the authoritative count reported by the index.
	TotalHits int

	// CapLimit bounds the hits exposed to pagination.
	CapLimit int
}

// NewPagination creates pagination state with the given page size and
// cap, falling back to defaults for non-positive values.
func NewPagination(pageSize, capLimit int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if capLimit <= 0 {
		capLimit = DefaultCapLimit
	}
	return Pagination{PageSize: pageSize, CapLimit: capLimit}
}

// Bounds returns the derived page bounds.
func (p Pagination) Bounds() PageBounds {
	return ComputeBounds(p.TotalHits, p.PageSize, p.CapLimit)
}

// Clamp forces a page index into the valid domain
// [0, max(totalPages,1)-1]. Out-of-range requests indicate a stale UI
// event, so they are corrected rather than rejected.
func (p Pagination) Clamp(pageIndex int) int {
	last := p.Bounds().TotalPages - 1
	if last < 0 {
		last = 0
	}
	if pageIndex < 0 {
		return 0
	}
	if pageIndex > last {
		return last
	}
	return pageIndex
}

// Offset returns the index offset for the current page.
func (p Pagination) Offset() int {
	return p.PageIndex * p.PageSize
}

// Visible reports whether a pagination control should render at all.
// A single page (or none) makes the control degenerate.
func (p Pagination) Visible() bool {
	return p.Bounds().TotalPages > 1
}
