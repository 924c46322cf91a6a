// Package catalog provides the filterable block list view for the TUI.
package catalog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
)

// View lists catalog blocks under a free-text filter.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	filter    *input.TextInput
	list      *list.BlockList
	statusbar *status.Bar

	registry driving.BlockRegistry

	width       int
	height      int
	ready       bool
	focusFilter bool
}

// NewView creates a new catalog view and loads every block.
func NewView(s *styles.Styles, km *keymap.KeyMap, registry driving.BlockRegistry) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		filter:    input.NewFilter(s),
		list:      list.NewBlockList(s),
		statusbar: status.NewBar(s, km),
		registry:  registry,
		width:     80,
		height:    24,
	}
	v.filter.Blur()
	v.refresh()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		if v.focusFilter {
			return v.handleFilterKey(msg)
		}
		return v.handleListKey(msg)
	}
	return v, nil
}

func (v *View) handleFilterKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyTab, tea.KeyDown:
		v.focusFilter = false
		v.filter.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	v.refresh()
	return v, cmd
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(msg.String(), v.keymap.Filter):
		v.focusFilter = true
		return v, v.filter.Focus()
	case keymap.Matches(msg.String(), v.keymap.Back):
		if v.filter.Value() != "" {
			v.filter.Reset()
			v.refresh()
		}
		return v, nil
	case keymap.Matches(msg.String(), v.keymap.Select):
		b := v.list.SelectedBlock()
		if b == nil {
			return v, nil
		}
		selected := *b
		return v, func() tea.Msg { return messages.BlockSelected{Block: selected} }
	case keymap.Matches(msg.String(), v.keymap.History):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHistory} }
	case keymap.Matches(msg.String(), v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// refresh re-applies the filter. A leading "service:" token narrows by service.
func (v *View) refresh() {
	if v.registry == nil {
		return
	}
	filter := parseFilter(v.filter.Value())
	blocks := v.registry.List(filter)
	v.list.SetBlocks(blocks)
	v.statusbar.SetBlockCount(len(blocks))
}

func parseFilter(raw string) driving.BlockFilter {
	raw = strings.TrimSpace(raw)
	if svc, rest, ok := strings.Cut(raw, ":"); ok && domain.Service(svc).IsValid() {
		return driving.BlockFilter{Service: domain.Service(svc), Term: strings.TrimSpace(rest)}
	}
	return driving.BlockFilter{Term: raw}
}

// View renders the catalog view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("gcpblocks"),
		v.styles.Muted.Render("Google Cloud REST operations"),
		"",
		v.filter.View(),
		"",
		v.list.View(),
		"",
		v.statusbar.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.filter.SetWidth(width)
	v.list.SetSize(width, max(height-10, 4))
	v.statusbar.SetWidth(width)
}

// Capturing reports whether keystrokes are going to the filter input.
func (v *View) Capturing() bool {
	return v.focusFilter
}

// Filter returns the current filter text.
func (v *View) Filter() string {
	return v.filter.Value()
}

// Blocks returns the blocks currently listed.
func (v *View) Blocks() []domain.Block {
	return v.list.Blocks()
}

// SelectedBlock returns the highlighted block, or nil if none.
func (v *View) SelectedBlock() *domain.Block {
	return v.list.SelectedBlock()
}
