// Package list provides the result list component for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/styles"
	"github.com/perch-labs/perch-cli/internal/core/domain"
)

// ResultList displays a page of hits with a cursor and selection marks.
// The cursor tracks the session's hover; marks mirror its selected set.
type ResultList struct {
	hits   []domain.Hit
	marked map[string]bool
	cursor int
	styles *styles.Styles
	width  int
	height int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		marked: map[string]bool{},
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.hits) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.hits)*2+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.hits)))
	lines = append(lines, header, "")

	// Each hit renders as name+path plus optional snippet line.
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.cursor >= visibleCount {
		start = r.cursor - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.hits) {
		end = len(r.hits)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderHit(i, &r.hits[i]))
	}

	return strings.Join(lines, "\n")
}

// renderHit formats a single hit with its selection mark and snippet.
func (r *ResultList) renderHit(index int, hit *domain.Hit) string {
	mark := "  "
	if r.marked[hit.Path] {
		mark = r.styles.Marked.Render("✓ ")
	}

	indicator := "  "
	if index == r.cursor {
		indicator = "> "
	}

	name := hit.Name
	if name == "" {
		name = "(unnamed)"
	}

	maxNameLen := r.width - 30
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	var titleLine string
	if index == r.cursor {
		titleLine = r.styles.Cursor.Render(fmt.Sprintf("%s%s%-*s", indicator, mark, maxNameLen, name))
	} else {
		titleLine = indicator + mark + r.styles.Normal.Render(name)
	}

	detail := hit.Path
	if s := hit.Snippet(); s != "" {
		detail = s
	}
	maxDetailLen := r.width - 8
	if maxDetailLen < 20 {
		maxDetailLen = 20
	}
	if len(detail) > maxDetailLen {
		detail = detail[:maxDetailLen-3] + "..."
	}

	return titleLine + "\n" + r.styles.Muted.Render("    "+detail)
}

// SetHits replaces the displayed page and resets the cursor.
func (r *ResultList) SetHits(hits []domain.Hit) {
	r.hits = hits
	r.cursor = 0
}

// Hits returns the current page.
func (r *ResultList) Hits() []domain.Hit {
	return r.hits
}

// SetMarked replaces the selection marks by path.
func (r *ResultList) SetMarked(paths []string) {
	r.marked = make(map[string]bool, len(paths))
	for _, p := range paths {
		r.marked[p] = true
	}
}

// Cursor returns the cursor index.
func (r *ResultList) Cursor() int {
	return r.cursor
}

// CursorHit returns the hit under the cursor, or nil if none.
func (r *ResultList) CursorHit() *domain.Hit {
	if len(r.hits) == 0 || r.cursor < 0 || r.cursor >= len(r.hits) {
		return nil
	}
	return &r.hits[r.cursor]
}

// MoveUp moves the cursor up.
func (r *ResultList) MoveUp() {
	if r.cursor > 0 {
		r.cursor--
	}
}

// MoveDown moves the cursor down.
func (r *ResultList) MoveDown() {
	if r.cursor < len(r.hits)-1 {
		r.cursor++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of hits on the page.
func (r *ResultList) Count() int {
	return len(r.hits)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.hits) == 0
}
