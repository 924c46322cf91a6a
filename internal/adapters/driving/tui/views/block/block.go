// Package block provides the input form view for a single block.
package block

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
)

// View is a form with one text input per block field.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	invoker  driving.BlockInvoker
	ctx      context.Context
	readFile func(string) ([]byte, error)

	block   *domain.Block
	inputs  []*input.TextInput
	focus   int
	running bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new block form view.
func NewView(s *styles.Styles, km *keymap.KeyMap, invoker driving.BlockInvoker) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km),
		invoker:   invoker,
		ctx:       context.Background(),
		readFile:  os.ReadFile,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context invocations run under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetBlock loads a block and builds its form.
func (v *View) SetBlock(b domain.Block) tea.Cmd {
	v.block = &b
	v.inputs = make([]*input.TextInput, 0, len(b.Fields))
	v.focus = 0
	v.running = false
	v.err = nil

	for _, f := range b.Fields {
		in := input.New(v.styles, f.Key, placeholder(f))
		in.SetRequired(f.Required)
		in.SetWidth(v.width)
		v.inputs = append(v.inputs, in)
	}

	v.statusbar.SetState(status.StateEditing)
	v.statusbar.SetMessage(b.ID)
	if len(v.inputs) == 0 {
		return nil
	}
	return v.inputs[0].Focus()
}

func placeholder(f domain.Field) string {
	switch {
	case f.DefaultsToProject:
		return "(configured project)"
	case f.Default != nil:
		return fmt.Sprintf("%v", f.Default)
	case len(f.Enum) > 0:
		return strings.Join(f.Enum, " | ")
	case f.Location == domain.LocationMedia:
		return "@path/to/file or text"
	case f.Type == domain.FieldArray:
		return "a,b,c"
	case f.Type == domain.FieldObject:
		return "{...}"
	}
	return string(f.Type)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the block form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil
	case messages.InvokeCompleted:
		v.running = false
		v.statusbar.SetState(status.StateEditing)
		v.statusbar.SetMessage(msg.BlockID)
		return v, nil
	case messages.PreviewCompleted:
		v.running = false
		v.statusbar.SetState(status.StateEditing)
		return v, nil
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.running {
		return v, nil
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewCatalog} }
	case keymap.Matches(key, v.keymap.Run):
		return v, v.submit(false)
	case keymap.Matches(key, v.keymap.Preview):
		return v, v.submit(true)
	case keymap.Matches(key, v.keymap.NextField):
		return v, v.moveFocus(1)
	case keymap.Matches(key, v.keymap.PrevField):
		return v, v.moveFocus(-1)
	case msg.Type == tea.KeyEnter:
		if v.focus == len(v.inputs)-1 || len(v.inputs) == 0 {
			return v, v.submit(false)
		}
		return v, v.moveFocus(1)
	}

	if len(v.inputs) == 0 {
		return v, nil
	}
	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return v, cmd
}

func (v *View) moveFocus(delta int) tea.Cmd {
	if len(v.inputs) == 0 {
		return nil
	}
	v.inputs[v.focus].Blur()
	v.focus = (v.focus + delta + len(v.inputs)) % len(v.inputs)
	return v.inputs[v.focus].Focus()
}

// submit runs or previews the block with the current form values.
func (v *View) submit(preview bool) tea.Cmd {
	if v.block == nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoBlock} }
	}
	if v.invoker == nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoInvoker} }
	}

	inputs, err := v.Inputs()
	if err != nil {
		v.err = err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(err.Error())
		return nil
	}

	v.err = nil
	v.running = true
	v.statusbar.SetState(status.StateRunning)
	v.statusbar.SetMessage(v.block.ID)

	ctx, id, invoker := v.ctx, v.block.ID, v.invoker
	if preview {
		return func() tea.Msg {
			req, err := invoker.Preview(ctx, id, inputs)
			return messages.PreviewCompleted{BlockID: id, Request: req, Err: err}
		}
	}
	return func() tea.Msg {
		event, err := invoker.Invoke(ctx, id, inputs)
		return messages.InvokeCompleted{BlockID: id, Event: event, Err: err}
	}
}

// Inputs collects non-empty form values. A value of the form @path is
// replaced by the file contents.
func (v *View) Inputs() (map[string]any, error) {
	inputs := make(map[string]any, len(v.inputs))
	for _, in := range v.inputs {
		value := strings.TrimSpace(in.Value())
		if value == "" {
			continue
		}
		if path, ok := strings.CutPrefix(value, "@"); ok && path != "" {
			data, err := v.readFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading %s for %s: %w", path, in.Label(), err)
			}
			inputs[in.Label()] = data
			continue
		}
		inputs[in.Label()] = value
	}
	return inputs, nil
}

// View renders the block form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.block == nil {
		return v.styles.Muted.Render("No block selected")
	}

	b := v.block
	sections := make([]string, 0, len(v.inputs)+10)
	sections = append(sections,
		v.styles.Title.Render(b.ID),
		v.styles.Method(b.HTTPMethod)+" "+v.styles.Normal.Render(b.Path),
	)
	if b.Description != "" {
		sections = append(sections, v.styles.Muted.Render(b.Description))
	}
	sections = append(sections, "")

	if len(v.inputs) == 0 {
		sections = append(sections, v.styles.Muted.Render("This block takes no inputs. Press enter to run."))
	}
	for i, in := range v.inputs {
		sections = append(sections, in.View())
		if i == v.focus && b.Fields[i].Description != "" {
			sections = append(sections, v.styles.Help.Render("    "+b.Fields[i].Description))
		}
	}

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	for _, in := range v.inputs {
		in.SetWidth(width)
	}
	v.statusbar.SetWidth(width)
}

// Capturing reports whether keystrokes are going to a form input.
func (v *View) Capturing() bool {
	return len(v.inputs) > 0
}

// Block returns the loaded block, or nil.
func (v *View) Block() *domain.Block {
	return v.block
}

// Running reports whether an invocation is in flight.
func (v *View) Running() bool {
	return v.running
}

// Focus returns the index of the focused field.
func (v *View) Focus() int {
	return v.focus
}

// Err returns the last form error.
func (v *View) Err() error {
	return v.err
}
