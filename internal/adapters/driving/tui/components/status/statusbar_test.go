package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perch-labs/perch-cli/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 80, bar.Width())
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_View_Searching(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateSearching)

	assert.Contains(t, bar.View(), "Searching...")
}

func TestBar_View_ResultsWithSelection(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateResults)
	bar.SetResultCount(120)
	bar.SetSelectedCount(3)
	bar.SetWidth(120)

	view := bar.View()

	assert.Contains(t, view, "120 results")
	assert.Contains(t, view, "3 selected")
}

func TestBar_View_NoticeTakesPrecedence(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateResults)
	bar.SetResultCount(10)
	bar.SetNotice(domain.Notification{
		Severity: domain.SeverityError,
		Title:    "Search failed",
		Message:  "index unavailable",
	})
	bar.SetWidth(120)

	view := bar.View()

	assert.Contains(t, view, "Search failed: index unavailable")
	assert.NotContains(t, view, "10 results")
}

func TestBar_ClearNotice(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetNotice(domain.Notification{Title: "Done"})
	require.NotNil(t, bar.Notice())

	bar.ClearNotice()

	assert.Nil(t, bar.Notice())
}

func TestBar_View_HintsChangeWithState(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(200)

	assert.Contains(t, bar.View(), "enter: search")

	bar.SetState(StateResults)
	bar.SetResultCount(5)
	assert.Contains(t, bar.View(), "space: select")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateResults)
	bar.SetResultCount(5)
	bar.SetSelectedCount(2)
	bar.SetNotice(domain.Notification{Title: "x"})

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Nil(t, bar.Notice())
}
