package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comboselect/internal/ui/input/types"
)

type stubContext struct {
	open, multi, hover, selection bool
	empty                         bool
}

func (c *stubContext) IsOpen() bool       { return c.open }
func (c *stubContext) IsMulti() bool      { return c.multi }
func (c *stubContext) InputEmpty() bool   { return c.empty }
func (c *stubContext) HasSelection() bool { return c.selection }
func (c *stubContext) HasHover() bool     { return c.hover }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focusedHandler(t *testing.T, ctx *stubContext) *Handler {
	t.Helper()
	h := New(types.DefaultKeyMap())
	actions, _ := h.Focus(ctx)
	require.Equal(t, []types.Action{types.OpenAction{}}, actions)
	require.True(t, h.IsFocused())
	return h
}

func TestBlurredNavigationKeyFocuses(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := &stubContext{empty: true}
	require.Equal(t, types.ModeBlurred, h.CurrentMode())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Equal(t, []types.Action{types.OpenAction{}}, actions)
	assert.Equal(t, types.ModeFocused, h.CurrentMode())
	assert.True(t, h.TextInput().Focused())
}

func TestBlurredDropsTyping(t *testing.T) {
	h := New(types.DefaultKeyMap())

	actions, cmd := h.HandleKey(runes("x"), &stubContext{empty: true})
	assert.Nil(t, actions)
	assert.Nil(t, cmd)
	assert.Equal(t, "", h.TextInput().Value())
}

func TestBlurredClearNeedsSelection(t *testing.T) {
	h := New(types.DefaultKeyMap())
	clear := tea.KeyMsg{Type: tea.KeyCtrlU}

	actions, _ := h.HandleKey(clear, &stubContext{})
	assert.Nil(t, actions)

	actions, _ = h.HandleKey(clear, &stubContext{selection: true})
	assert.Equal(t, []types.Action{types.ClearAction{}}, actions)
}

func TestFocusedKeys(t *testing.T) {
	tests := []struct {
		name string
		ctx  stubContext
		msg  tea.KeyMsg
		want []types.Action
	}{
		{"down opens closed menu", stubContext{}, tea.KeyMsg{Type: tea.KeyDown}, []types.Action{types.OpenAction{}}},
		{"down hovers next", stubContext{open: true}, tea.KeyMsg{Type: tea.KeyDown}, []types.Action{types.HoverAction{Direction: "next"}}},
		{"up hovers prev", stubContext{open: true}, tea.KeyMsg{Type: tea.KeyUp}, []types.Action{types.HoverAction{Direction: "prev"}}},
		{"enter commits hover", stubContext{open: true, hover: true}, tea.KeyMsg{Type: tea.KeyEnter}, []types.Action{types.CommitAction{}}},
		{"enter without hover", stubContext{open: true}, tea.KeyMsg{Type: tea.KeyEnter}, nil},
		{"esc closes", stubContext{open: true}, tea.KeyMsg{Type: tea.KeyEsc}, []types.Action{types.BlurAction{}}},
		{"ctrl+u clears", stubContext{}, tea.KeyMsg{Type: tea.KeyCtrlU}, []types.Action{types.ClearAction{}}},
		{"f1 shows help", stubContext{}, tea.KeyMsg{Type: tea.KeyF1}, []types.Action{types.ShowHelpAction{}}},
		{"ctrl+s finishes", stubContext{}, tea.KeyMsg{Type: tea.KeyCtrlS}, []types.Action{types.QuitAction{}}},
		{"ctrl+c quits", stubContext{}, tea.KeyMsg{Type: tea.KeyCtrlC}, []types.Action{types.QuitAction{Force: true}}},
		{
			"backspace removes last chip",
			stubContext{open: true, multi: true, selection: true, empty: true},
			tea.KeyMsg{Type: tea.KeyBackspace},
			[]types.Action{types.UnselectLastAction{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.ctx
			h := focusedHandler(t, &ctx)

			actions, _ := h.HandleKey(tt.msg, &ctx)
			assert.Equal(t, tt.want, actions)
		})
	}
}

func TestFocusedTypingUpdatesText(t *testing.T) {
	ctx := &stubContext{empty: true}
	h := focusedHandler(t, ctx)

	actions, _ := h.HandleKey(runes("b"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "b"}}, actions)

	actions, _ = h.HandleKey(runes("a"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "ba"}}, actions)

	// Backspace with text edits the input instead of removing a chip
	ctx.empty = false
	ctx.multi = true
	ctx.selection = true
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "b"}}, actions)
}

func TestTabTogglesFocus(t *testing.T) {
	ctx := &stubContext{open: true}
	h := focusedHandler(t, ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, []types.Action{types.BlurAction{}}, actions)
	assert.False(t, h.IsFocused())
	assert.False(t, h.TextInput().Focused())

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, []types.Action{types.OpenAction{}}, actions)
	assert.True(t, h.IsFocused())
}

func TestFocusTwiceIsNoOp(t *testing.T) {
	ctx := &stubContext{}
	h := focusedHandler(t, ctx)

	actions, cmd := h.Focus(ctx)
	assert.Nil(t, actions)
	assert.Nil(t, cmd)
}

func TestSyncText(t *testing.T) {
	h := New(types.DefaultKeyMap())

	h.SyncText("cherry")
	assert.Equal(t, "cherry", h.TextInput().Value())
	assert.Equal(t, len("cherry"), h.TextInput().Position())

	h.Reset()
	assert.Equal(t, "", h.TextInput().Value())
	assert.Equal(t, types.ModeBlurred, h.CurrentMode())
}
