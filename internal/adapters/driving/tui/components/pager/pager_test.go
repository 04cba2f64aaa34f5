package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perch-labs/perch-cli/internal/core/domain"
)

func TestPager_HiddenForSinglePage(t *testing.T) {
	p := NewPager(nil)
	p.SetPagination(domain.Pagination{PageSize: 24, CapLimit: 1000, TotalHits: 10})

	assert.False(t, p.Visible())
	assert.Empty(t, p.View())
}

func TestPager_HiddenForEmptyResults(t *testing.T) {
	p := NewPager(nil)
	p.SetPagination(domain.Pagination{PageSize: 24, CapLimit: 1000})

	assert.False(t, p.Visible())
	assert.Empty(t, p.View())
}

func TestPager_ShowsPagePosition(t *testing.T) {
	p := NewPager(nil)
	p.SetPagination(domain.Pagination{PageSize: 24, CapLimit: 1000, TotalHits: 100, PageIndex: 2})

	require.True(t, p.Visible())
	assert.Contains(t, p.View(), "Page 3 of 5")
}

func TestPager_FlagsCappedTotal(t *testing.T) {
	p := NewPager(nil)
	p.SetPagination(domain.Pagination{PageSize: 24, CapLimit: 1000, TotalHits: 5000})

	view := p.View()

	// 1000-hit cap over 24 per page yields 42 pages.
	assert.Contains(t, view, "Page 1 of 42")
	assert.Contains(t, view, "showing first 1000 of 5000")
}
