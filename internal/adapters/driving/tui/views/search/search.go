// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/components/input"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/components/list"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/components/pager"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/components/status"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/keymap"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/messages"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/styles"
	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driving"
)

// menuAction pairs an action menu label with its operation kind.
type menuAction struct {
	label string
	kind  domain.FileOpKind
}

// actionMenu is the per-result action overlay.
type actionMenu struct {
	actions  []menuAction
	selected int
	targets  []string
}

// confirmState is the pending confirmation overlay. The answer is
// written to reply, unblocking the dispatcher goroutine.
type confirmState struct {
	prompt string
	reply  chan<- bool
}

// View is the search session surface: query input, result list with
// cursor and multi-selection, pagination, action menu, confirmation
// overlay, and a status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	pager     *pager.Pager
	statusbar *status.Bar

	session driving.SearchSession
	fileOps driving.FileOperations
	ctx     context.Context

	width      int
	height     int
	ready      bool
	focusInput bool
	menu       *actionMenu
	confirm    *confirmState
}

// NewView creates a new search view bound to a session.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	session driving.SearchSession,
	fileOps driving.FileOperations,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		list:       list.NewResultList(s),
		pager:      pager.NewPager(s),
		statusbar:  status.NewBar(s, km),
		session:    session,
		fileOps:    fileOps,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.applyOutcome(msg.Outcome)
		return v, nil

	case messages.IndexChanged:
		if v.session == nil {
			return v, nil
		}
		return v, v.fetchCmd(v.session.Refresh())

	case messages.Notice:
		v.statusbar.SetNotice(msg.Notification)
		return v, nil

	case messages.ConfirmRequested:
		v.confirm = &confirmState{prompt: msg.Prompt, reply: msg.Reply}
		return v, nil

	case messages.OperationDone:
		// The dispatcher already removed deleted paths from the
		// session, so re-sync the visible page.
		if v.session != nil {
			v.syncFromSession()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input. Overlays take precedence.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.confirm != nil {
		return v.handleConfirmKey(msg)
	}
	if v.menu != nil {
		return v.handleMenuKey(msg)
	}
	if v.focusInput {
		return v.handleInputKey(msg)
	}
	return v.handleResultsKey(msg)
}

// handleConfirmKey answers the pending confirmation.
func (v *View) handleConfirmKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		v.confirm.reply <- true
		v.confirm = nil
	case "n", "N", "esc":
		v.confirm.reply <- false
		v.confirm = nil
	}
	return v, nil
}

// handleMenuKey drives the action menu overlay.
func (v *View) handleMenuKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		if v.menu.selected > 0 {
			v.menu.selected--
		}
	case keymap.Matches(msg.String(), v.keymap.Down):
		if v.menu.selected < len(v.menu.actions)-1 {
			v.menu.selected++
		}
	case msg.Type == tea.KeyEnter:
		action := v.menu.actions[v.menu.selected]
		targets := v.menu.targets
		v.menu = nil
		if action.kind == "" {
			return v, nil
		}
		return v, v.dispatchCmd(action.kind, targets)
	case msg.Type == tea.KeyEsc:
		v.menu = nil
	}
	return v, nil
}

// handleInputKey handles typing mode. Every keystroke syncs the raw
// query into the session; enter commits it.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return v, v.commitQuery()
	}
	if msg.Type == tea.KeyEsc {
		// Leaving the input clears any selection left behind.
		if v.session != nil {
			v.session.ClearSelection()
			v.syncFromSession()
		}
		if !v.list.IsEmpty() {
			v.focusInput = false
			v.input.Blur()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.session != nil {
		v.session.SetQuery(v.input.Value())
	}
	return v, cmd
}

// handleResultsKey handles navigation mode over the result list.
func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.session == nil {
		return v, nil
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
		v.hoverCursor()

	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
		v.hoverCursor()

	case keymap.Matches(keyStr, v.keymap.ToggleSelect):
		if hit := v.list.CursorHit(); hit != nil {
			v.session.ToggleSelect(hit.Path)
			v.syncFromSession()
		}

	case keymap.Matches(keyStr, v.keymap.PrevPage):
		return v, v.changePage(-1)

	case keymap.Matches(keyStr, v.keymap.NextPage):
		return v, v.changePage(+1)

	case keymap.Matches(keyStr, v.keymap.NewSearch):
		v.focusInput = true
		return v, v.input.Focus()

	case msg.Type == tea.KeyEnter:
		v.openMenu()

	case msg.Type == tea.KeyEsc:
		// First esc clears the selection, second returns to input.
		if len(v.session.SelectedPaths()) > 0 {
			v.session.ClearSelection()
			v.syncFromSession()
			return v, nil
		}
		v.focusInput = true
		return v, v.input.Focus()
	}

	return v, nil
}

// commitQuery submits the current input as a fresh search.
func (v *View) commitQuery() tea.Cmd {
	if v.session == nil {
		return nil
	}

	v.session.SetQuery(v.input.Value())
	req := v.session.CommitQuery()

	v.statusbar.ClearNotice()
	v.statusbar.SetState(status.StateSearching)
	v.focusInput = false
	v.input.Blur()

	return v.fetchCmd(req)
}

// changePage requests a neighbouring page. The session clamps and
// reports whether anything actually changed.
func (v *View) changePage(delta int) tea.Cmd {
	req, ok := v.session.RequestPage(v.session.Pagination().PageIndex + delta)
	if !ok {
		return nil
	}
	v.statusbar.SetState(status.StateSearching)
	return v.fetchCmd(req)
}

// openMenu opens the action menu targeting the selection when present,
// otherwise the cursor row.
func (v *View) openMenu() {
	targets := v.session.SelectedPaths()
	if len(targets) == 0 {
		hit := v.list.CursorHit()
		if hit == nil {
			return
		}
		targets = []string{hit.Path}
	}

	actions := []menuAction{
		{label: "Open", kind: domain.FileOpOpen},
		{label: "Open folder", kind: domain.FileOpOpenFolder},
		{label: "Delete", kind: domain.FileOpDelete},
		{label: "Forget", kind: domain.FileOpForget},
		{label: "Cancel"},
	}
	v.menu = &actionMenu{actions: actions, targets: targets}
}

// hoverCursor mirrors the list cursor into the session's hover state.
func (v *View) hoverCursor() {
	if hit := v.list.CursorHit(); hit != nil {
		v.session.Hover(hit.Path)
	} else {
		v.session.Unhover()
	}
}

// fetchCmd runs a search off the event loop.
func (v *View) fetchCmd(req domain.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		return messages.SearchCompleted{Outcome: v.session.Fetch(v.ctx, req)}
	}
}

// dispatchCmd routes an operation for every target path. Destructive
// kinds prompt per path via the confirmation overlay.
func (v *View) dispatchCmd(kind domain.FileOpKind, targets []string) tea.Cmd {
	return func() tea.Msg {
		var last messages.OperationDone
		for _, path := range targets {
			op := domain.FileOperation{Path: path, Kind: kind}
			last = messages.OperationDone{Op: op, Err: v.fileOps.Dispatch(v.ctx, op)}
		}
		return last
	}
}

// applyOutcome hands a fetch result to the session; stale outcomes are
// dropped there and leave the view untouched.
func (v *View) applyOutcome(outcome domain.SearchOutcome) {
	if v.session == nil || !v.session.Apply(outcome) {
		return
	}
	v.syncFromSession()
	v.hoverCursor()
}

// syncFromSession re-reads the session's visible state.
func (v *View) syncFromSession() {
	v.list.SetHits(v.session.Hits())
	v.list.SetMarked(v.session.SelectedPaths())
	v.pager.SetPagination(v.session.Pagination())
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(v.session.Pagination().TotalHits)
	v.statusbar.SetSelectedCount(len(v.session.SelectedPaths()))
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	sections = append(sections, v.styles.Title.Render("Perch"), "")
	sections = append(sections, v.input.View(), "")
	sections = append(sections, v.list.View())

	if p := v.pager.View(); p != "" {
		sections = append(sections, "", p)
	}

	if v.menu != nil {
		sections = append(sections, "", v.renderMenu())
	}
	if v.confirm != nil {
		sections = append(sections, "", v.renderConfirm())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMenu renders the action menu overlay.
func (v *View) renderMenu() string {
	lines := make([]string, 0, len(v.menu.actions))
	for i, action := range v.menu.actions {
		indicator := "  "
		if i == v.menu.selected {
			indicator = "> "
		}

		var line string
		if i == v.menu.selected {
			line = v.styles.Cursor.Render(indicator + action.label)
		} else {
			line = v.styles.Normal.Render(indicator + action.label)
		}
		lines = append(lines, line)
	}

	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// renderConfirm renders the confirmation overlay.
func (v *View) renderConfirm() string {
	content := v.styles.Warning.Render(v.confirm.prompt) + "\n" +
		v.styles.Muted.Render("y: confirm | n: cancel")
	return v.styles.Border.Padding(0, 1).Render(content)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// MenuOpen returns whether the action menu overlay is visible.
func (v *View) MenuOpen() bool {
	return v.menu != nil
}

// ConfirmOpen returns whether the confirmation overlay is visible.
func (v *View) ConfirmOpen() bool {
	return v.confirm != nil
}
