// Package history provides the recent invocations view.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
)

// DefaultLimit is how many invocations the view loads.
const DefaultLimit = 50

// View lists recent invocations with the selected one expanded.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	history driving.HistoryService
	ctx     context.Context

	invocations []domain.Invocation
	selected    int
	loading     bool
	err         error

	width  int
	height int
	ready  bool
}

// NewView creates a new history view. history may be nil when disabled.
func NewView(s *styles.Styles, km *keymap.KeyMap, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		keymap:  km,
		history: history,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for loading.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Load fetches recent invocations.
func (v *View) Load() tea.Cmd {
	if v.history == nil {
		v.err = domain.ErrHistoryUnavailable
		return nil
	}
	v.loading = true
	ctx, svc := v.ctx, v.history
	return func() tea.Msg {
		invocations, err := svc.List(ctx, DefaultLimit)
		return messages.HistoryLoaded{Invocations: invocations, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case messages.HistoryLoaded:
		v.loading = false
		v.err = msg.Err
		v.invocations = msg.Invocations
		v.selected = 0
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewCatalog} }
	case keymap.Matches(key, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.invocations)-1 {
			v.selected++
		}
	case key == "r":
		return v, v.Load()
	}
	return v, nil
}

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{v.styles.Title.Render("History"), ""}
	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case v.loading:
		sections = append(sections, v.styles.Muted.Render("Loading..."))
	case len(v.invocations) == 0:
		sections = append(sections, v.styles.Muted.Render("No invocations recorded"))
	default:
		sections = append(sections, v.renderRows()...)
		sections = append(sections, "", v.renderDetail(&v.invocations[v.selected]))
	}

	sections = append(sections, "", v.styles.Help.Render("↑/↓ select  r reload  esc back  q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderRows() []string {
	visible := max(v.height-16, 3)
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := min(start+visible, len(v.invocations))

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		inv := &v.invocations[i]
		line := fmt.Sprintf("%s  %-40s %-9s %3d %8s",
			inv.StartedAt.Local().Format("2006-01-02 15:04:05"),
			inv.BlockID,
			inv.Status,
			inv.StatusCode,
			inv.Duration.Round(time.Millisecond))
		switch {
		case i == v.selected:
			rows = append(rows, v.styles.Selected.Render("> "+line))
		case inv.Status == domain.InvocationFailed:
			rows = append(rows, v.styles.Error.Render("  "+line))
		default:
			rows = append(rows, v.styles.Normal.Render("  "+line))
		}
	}
	return rows
}

func (v *View) renderDetail(inv *domain.Invocation) string {
	lines := []string{
		v.styles.Subtitle.Render(inv.ID),
		v.styles.Muted.Render("credential: " + string(inv.CredentialSource)),
	}
	if inv.Error != "" {
		lines = append(lines, v.styles.Error.Render(inv.Error))
	}
	if len(inv.Inputs) > 0 {
		data, err := json.MarshalIndent(inv.Inputs, "", "  ")
		if err == nil {
			lines = append(lines, v.styles.Normal.Render(string(data)))
		}
	}
	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Invocations returns the loaded invocations.
func (v *View) Invocations() []domain.Invocation {
	return v.invocations
}

// Selected returns the index of the selected invocation.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
