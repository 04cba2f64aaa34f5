// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/keymap"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/styles"
	"github.com/perch-labs/perch-cli/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateResults   State = "results"
)

// Bar displays application status, notifications, and keybinding hints.
type Bar struct {
	styles        *styles.Styles
	keymap        *keymap.KeyMap
	state         State
	notice        *domain.Notification
	resultCount   int
	selectedCount int
	width         int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state, the latest notification, and counts.
func (s *Bar) renderLeft() string {
	if s.notice != nil {
		text := s.notice.Title
		if s.notice.Message != "" {
			text += ": " + s.notice.Message
		}
		switch s.notice.Severity {
		case domain.SeverityError:
			return s.styles.Error.Render(text)
		case domain.SeveritySuccess:
			return s.styles.Success.Render(text)
		default:
			return s.styles.Normal.Render(text)
		}
	}

	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render("Searching...")
	case StateResults:
		text := fmt.Sprintf("%d results", s.resultCount)
		if s.selectedCount > 0 {
			text += fmt.Sprintf(" · %d selected", s.selectedCount)
		}
		return s.styles.Normal.Render(text)
	default:
		return s.styles.Muted.Render("Ready")
	}
}

// renderRight renders keybinding hints for the current state.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateResults && s.resultCount > 0 {
		bindings = s.keymap.ResultsHelp()
	} else {
		bindings = s.keymap.InputHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetNotice displays a notification until cleared or replaced.
func (s *Bar) SetNotice(n domain.Notification) {
	s.notice = &n
}

// Notice returns the displayed notification, nil when none.
func (s *Bar) Notice() *domain.Notification {
	return s.notice
}

// ClearNotice removes the displayed notification.
func (s *Bar) ClearNotice() {
	s.notice = nil
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// SetSelectedCount sets the selected count.
func (s *Bar) SetSelectedCount(count int) {
	s.selectedCount = count
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.notice = nil
	s.resultCount = 0
	s.selectedCount = 0
}
