// Package result provides the scrollable invocation result view.
package result

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// View shows an output event, a request preview or an invocation error.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model

	title   string
	summary string
	failed  bool
	content string

	width  int
	height int
	ready  bool
}

// NewView creates a new result view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:   s,
		keymap:   km,
		viewport: viewport.New(80, 18),
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetInvocation shows the outcome of a block invocation.
func (v *View) SetInvocation(msg messages.InvokeCompleted) {
	v.title = msg.BlockID
	if msg.Err != nil {
		v.failed = true
		v.summary = msg.Err.Error()
		v.setContent(errorContent(msg.Err))
		return
	}

	v.failed = false
	ev := msg.Event
	if ev == nil {
		v.summary = "no output"
		v.setContent("")
		return
	}
	v.summary = fmt.Sprintf("%d %s in %s", ev.StatusCode, ev.ContentType, ev.Duration.Round(time.Millisecond))
	v.setContent(eventContent(ev))
}

// SetPreview shows the request a block would send.
func (v *View) SetPreview(msg messages.PreviewCompleted) {
	v.title = msg.BlockID + " (preview)"
	if msg.Err != nil {
		v.failed = true
		v.summary = msg.Err.Error()
		v.setContent(errorContent(msg.Err))
		return
	}

	v.failed = false
	req := msg.Request
	if req == nil {
		v.summary = "no request"
		v.setContent("")
		return
	}
	v.summary = req.Method + " " + req.URL
	v.setContent(requestContent(req))
}

func (v *View) setContent(content string) {
	v.content = content
	v.viewport.SetContent(content)
	v.viewport.GotoTop()
}

func eventContent(ev *domain.OutputEvent) string {
	if len(ev.Raw) > 0 {
		if strings.HasPrefix(ev.ContentType, "text/") {
			return string(ev.Raw)
		}
		return fmt.Sprintf("[%d bytes of %s]", len(ev.Raw), ev.ContentType)
	}
	if ev.Data == nil {
		return "(empty response)"
	}
	return prettyJSON(ev.Data)
}

func requestContent(req *domain.APIRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", req.Method, req.URL)

	keys := make([]string, 0, len(req.Header))
	for k := range req.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s: %s\n", k, strings.Join(req.Header[k], ", "))
	}
	if req.ContentType != "" {
		fmt.Fprintf(&sb, "Content-Type: %s\n", req.ContentType)
	}

	if len(req.Body) > 0 {
		sb.WriteString("\n")
		if json.Valid(req.Body) {
			var body any
			_ = json.Unmarshal(req.Body, &body)
			sb.WriteString(prettyJSON(body))
		} else {
			fmt.Fprintf(&sb, "[%d bytes]", len(req.Body))
		}
	}
	return sb.String()
}

func errorContent(err error) string {
	apiErr, ok := domain.AsAPIError(err)
	if !ok || len(apiErr.Body) == 0 {
		return err.Error()
	}
	var body any
	if json.Unmarshal(apiErr.Body, &body) != nil {
		return err.Error() + "\n\n" + string(apiErr.Body)
	}
	return err.Error() + "\n\n" + prettyJSON(body)
}

func prettyJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// Update handles messages for the result view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), v.keymap.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewBlock} }
		case keymap.Matches(msg.String(), v.keymap.Quit):
			return v, func() tea.Msg { return messages.Quit{} }
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the result view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	summary := v.styles.Success.Render(v.summary)
	if v.failed {
		summary = v.styles.Error.Render(v.summary)
	}

	footer := v.styles.Help.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll  esc back  q quit", v.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render(v.title),
		summary,
		"",
		v.viewport.View(),
		"",
		footer,
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.viewport.Width = width
	v.viewport.Height = max(height-6, 3)
}

// Content returns the rendered body text.
func (v *View) Content() string {
	return v.content
}

// Failed reports whether the shown outcome is an error.
func (v *View) Failed() bool {
	return v.failed
}

// Summary returns the one-line outcome summary.
func (v *View) Summary() string {
	return v.summary
}
