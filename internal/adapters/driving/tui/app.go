package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/messages"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/styles"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/tui/views/search"
)

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// searchView is the single session surface.
	searchView *search.View

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		searchView: search.NewView(s, nil, ports.Session, ports.FileOps),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("perch - local file search"),
		a.searchView.Init(),
	}
	if a.ports.Prompter != nil {
		cmds = append(cmds, a.awaitConfirm)
	}
	if a.ports.Notifier != nil {
		cmds = append(cmds, a.awaitNotice)
	}
	if a.ports.Refresh != nil {
		cmds = append(cmds, a.awaitRefresh)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	// Channel-fed messages re-arm their subscription after handling.
	case messages.ConfirmRequested:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, tea.Batch(cmd, a.awaitConfirm)

	case messages.Notice:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, tea.Batch(cmd, a.awaitNotice)

	case messages.IndexChanged:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, tea.Batch(cmd, a.awaitRefresh)

	case messages.Quit:
		return a, tea.Quit
	}

	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.searchView.View()
}

// awaitConfirm blocks on the prompter's request stream.
func (a *App) awaitConfirm() tea.Msg {
	select {
	case req, ok := <-a.ports.Prompter.Requests():
		if !ok {
			return nil
		}
		return messages.ConfirmRequested{Prompt: req.Prompt, Reply: req.Reply}
	case <-a.ctx.Done():
		return nil
	}
}

// awaitNotice blocks on the notifier's notification stream.
func (a *App) awaitNotice() tea.Msg {
	select {
	case n, ok := <-a.ports.Notifier.Notifications():
		if !ok {
			return nil
		}
		return messages.Notice{Notification: n}
	case <-a.ctx.Done():
		return nil
	}
}

// awaitRefresh blocks on index-change ticks.
func (a *App) awaitRefresh() tea.Msg {
	select {
	case _, ok := <-a.ports.Refresh:
		if !ok {
			return nil
		}
		return messages.IndexChanged{}
	case <-a.ctx.Done():
		return nil
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
}
