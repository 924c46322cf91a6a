package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/views/block"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/views/result"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	catalogView *catalog.View
	blockView   *block.View
	resultView  *result.View
	historyView *history.View

	// currentView tracks which view is active.
	currentView messages.ViewType
	// previousView is where the help view returns to.
	previousView messages.ViewType

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingRegistry)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		catalogView: catalog.NewView(s, km, ports.Registry),
		blockView:   block.NewView(s, km, ports.Invoker),
		resultView:  result.NewView(s, km),
		historyView: history.NewView(s, km, ports.History),
		currentView: messages.ViewCatalog,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.blockView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("gcpblocks")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateCurrent(msg)

	case messages.Quit:
		return a, tea.Quit

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.BlockSelected:
		a.currentView = messages.ViewBlock
		return a, a.blockView.SetBlock(msg.Block)

	case messages.InvokeCompleted:
		a.blockView, _ = a.blockView.Update(msg)
		a.resultView.SetInvocation(msg)
		a.err = msg.Err
		a.currentView = messages.ViewResult
		return a, nil

	case messages.PreviewCompleted:
		a.blockView, _ = a.blockView.Update(msg)
		a.resultView.SetPreview(msg)
		a.err = msg.Err
		a.currentView = messages.ViewResult
		return a, nil

	case messages.HistoryLoaded:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	return a, a.updateCurrent(msg)
}

func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewCatalog:
		a.catalogView, cmd = a.catalogView.Update(msg)
	case messages.ViewBlock:
		a.blockView, cmd = a.blockView.Update(msg)
	case messages.ViewResult:
		a.resultView, cmd = a.resultView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewHelp:
		if km, ok := msg.(tea.KeyMsg); ok {
			if keymap.Matches(km.String(), a.keymap.Quit) {
				return tea.Quit
			}
			a.currentView = a.previousView
		}
	}
	return cmd
}

func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	if view == messages.ViewHelp {
		a.previousView = a.currentView
	}
	a.currentView = view
	if view == messages.ViewHistory {
		return a.historyView.Load()
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewBlock:
		return a.blockView.View()
	case messages.ViewResult:
		return a.resultView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.catalogView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Catalog:
  /           Filter blocks (prefix with storage: or resourcemanager:)
  j/k, ↑/↓    Navigate blocks
  enter       Open block form
  h           Invocation history
  q           Quit

Block form:
  tab, ↓      Next field
  shift+tab   Previous field
  @path       Read a field value from a file
  enter       Next field, run on the last one
  ctrl+r      Run
  ctrl+p      Preview the request
  esc         Back to catalog

Result:
  ↑/↓         Scroll
  esc         Back to form

Anywhere:
  ctrl+c      Quit

[any key] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.catalogView.SetDimensions(width, height)
	a.blockView.SetDimensions(width, height)
	a.resultView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}
