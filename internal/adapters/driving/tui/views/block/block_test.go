package block

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

type mockInvoker struct {
	err        error
	lastInputs map[string]any
}

func (m *mockInvoker) Invoke(_ context.Context, blockID string, inputs map[string]any) (*domain.OutputEvent, error) {
	m.lastInputs = inputs
	if m.err != nil {
		return nil, m.err
	}
	return &domain.OutputEvent{BlockID: blockID, StatusCode: 200}, nil
}

func (m *mockInvoker) Preview(_ context.Context, _ string, inputs map[string]any) (*domain.APIRequest, error) {
	m.lastInputs = inputs
	return &domain.APIRequest{Method: "POST"}, nil
}

var uploadBlock = domain.Block{
	ID:         "storage.objects.insert",
	Service:    domain.ServiceStorage,
	HTTPMethod: "POST",
	Path:       "b/{bucket}/o",
	Fields: []domain.Field{
		{Key: "bucket", Location: domain.LocationPath, Type: domain.FieldString, Required: true, Description: "Bucket name."},
		{Key: "name", Location: domain.LocationQuery, Type: domain.FieldString, Required: true},
		{Key: "media", Location: domain.LocationMedia, Type: domain.FieldString, Required: true},
	},
}

func newTestView(invoker *mockInvoker) *View {
	v := NewView(nil, nil, invoker)
	v.SetDimensions(100, 30)
	v.SetBlock(uploadBlock)
	return v
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends one keystroke per rune, as a terminal does. A single
// multi-rune message such as "delete" would match key bindings by name.
func typeText(v *View, text string) *View {
	for _, r := range text {
		v, _ = v.Update(runes(string(r)))
	}
	return v
}

func TestView_NoBlock(t *testing.T) {
	v := NewView(nil, nil, &mockInvoker{})
	v.SetDimensions(80, 24)

	assert.Contains(t, v.View(), "No block selected")
	assert.Nil(t, v.Block())

	cmd := v.submit(false)
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ErrorOccurred{Err: ErrNoBlock}, cmd())
}

func TestView_NoInvoker(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetBlock(uploadBlock)

	cmd := v.submit(false)
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ErrorOccurred{Err: ErrNoInvoker}, cmd())
}

func TestView_SetBlockBuildsForm(t *testing.T) {
	v := newTestView(&mockInvoker{})

	assert.Equal(t, "storage.objects.insert", v.Block().ID)
	assert.Equal(t, 0, v.Focus())
	assert.True(t, v.Capturing())

	view := v.View()
	assert.Contains(t, view, "b/{bucket}/o")
	assert.Contains(t, view, "bucket")
	assert.Contains(t, view, "Bucket name.")
}

func TestView_FieldNavigationWraps(t *testing.T) {
	v := newTestView(&mockInvoker{})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, v.Focus())
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, v.Focus())
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, v.Focus(), "enter on last field submits instead of moving")
}

func TestView_RunCollectsInputs(t *testing.T) {
	invoker := &mockInvoker{}
	v := newTestView(invoker)

	v = typeText(v, "logs")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v = typeText(v, "a.txt")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v = typeText(v, "hello")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	assert.True(t, v.Running())

	msg, ok := cmd().(messages.InvokeCompleted)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, 200, msg.Event.StatusCode)
	assert.Equal(t, map[string]any{"bucket": "logs", "name": "a.txt", "media": "hello"}, invoker.lastInputs)

	v, _ = v.Update(msg)
	assert.False(t, v.Running())
}

func TestView_KeysIgnoredWhileRunning(t *testing.T) {
	v := newTestView(&mockInvoker{})
	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Nil(t, cmd)
}

func TestView_Preview(t *testing.T) {
	invoker := &mockInvoker{}
	v := newTestView(invoker)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.PreviewCompleted)
	require.True(t, ok)
	assert.Equal(t, "storage.objects.insert", msg.BlockID)
	assert.Equal(t, "POST", msg.Request.Method)
	assert.Empty(t, invoker.lastInputs)
}

func TestView_EscGoesBack(t *testing.T) {
	v := newTestView(&mockInvoker{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewCatalog}, cmd())
}

func TestView_Inputs_ReadsFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x1, 0x2}, 0600))

	v := newTestView(&mockInvoker{})
	v.inputs[2].SetValue("@" + path)
	v.inputs[0].SetValue("  ")

	inputs, err := v.Inputs()

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"media": []byte{0x1, 0x2}}, inputs)
}

func TestView_Inputs_FileError(t *testing.T) {
	v := newTestView(&mockInvoker{})
	v.readFile = func(string) ([]byte, error) { return nil, errors.New("boom") }
	v.inputs[2].SetValue("@missing")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Nil(t, cmd)
	require.Error(t, v.Err())
	assert.Contains(t, v.Err().Error(), "reading missing for media")
	assert.Contains(t, v.View(), "boom")
}

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		field domain.Field
		want  string
	}{
		{domain.Field{DefaultsToProject: true}, "(configured project)"},
		{domain.Field{Default: 10}, "10"},
		{domain.Field{Enum: []string{"full", "noAcl"}}, "full | noAcl"},
		{domain.Field{Location: domain.LocationMedia}, "@path/to/file or text"},
		{domain.Field{Type: domain.FieldArray}, "a,b,c"},
		{domain.Field{Type: domain.FieldObject}, "{...}"},
		{domain.Field{Type: domain.FieldInteger}, "integer"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, placeholder(tt.field))
		})
	}
}

func TestView_NoFieldsRunsOnEnter(t *testing.T) {
	v := NewView(nil, nil, &mockInvoker{})
	v.SetDimensions(80, 24)
	v.SetBlock(domain.Block{ID: "storage.projects.serviceAccount.get", HTTPMethod: "GET"})

	assert.False(t, v.Capturing())
	assert.Contains(t, v.View(), "no inputs")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(messages.InvokeCompleted)
	assert.True(t, ok)
}
