// Package pager renders the pagination control for the result view.
package pager

import (
	"fmt"

	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/styles"
	"github.com/perch-labs/perch-cli/internal/core/domain"
)

// Pager renders the current page position. It disappears entirely when
// the result set fits on a single page.
type Pager struct {
	pagination domain.Pagination
	styles     *styles.Styles
}

// NewPager creates a pager component.
func NewPager(s *styles.Styles) *Pager {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Pager{styles: s}
}

// SetPagination updates the pagination snapshot.
func (p *Pager) SetPagination(pag domain.Pagination) {
	p.pagination = pag
}

// Pagination returns the current snapshot.
func (p *Pager) Pagination() domain.Pagination {
	return p.pagination
}

// Visible reports whether the control should render.
func (p *Pager) Visible() bool {
	return p.pagination.Visible()
}

// View renders the control, empty when hidden.
func (p *Pager) View() string {
	if !p.Visible() {
		return ""
	}

	bounds := p.pagination.Bounds()
	line := fmt.Sprintf("Page %d of %d", p.pagination.PageIndex+1, bounds.TotalPages)

	// Flag when the cap truncates the browsable set.
	if bounds.CappedTotal < p.pagination.TotalHits {
		line += fmt.Sprintf("  (showing first %d of %d)", bounds.CappedTotal, p.pagination.TotalHits)
	}

	return p.styles.Muted.Render(line)
}
