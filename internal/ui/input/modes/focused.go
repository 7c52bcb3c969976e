package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"comboselect/internal/ui/input/types"
)

// FocusedMode handles keys while the control has focus. Keys it does not
// consume are typed into the text input.
type FocusedMode struct {
	keys types.KeyMap
}

func NewFocusedMode(keys types.KeyMap) *FocusedMode {
	return &FocusedMode{keys: keys}
}

func (m *FocusedMode) Name() string {
	return "focused"
}

// Enter opens the menu when focus is gained
func (m *FocusedMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.OpenAction{}}
}

// Exit closes the menu when focus is lost
func (m *FocusedMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.BlurAction{}}
}

func (m *FocusedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true

	case key.Matches(msg, m.keys.Done):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Focus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBlurred}}, true

	case key.Matches(msg, m.keys.Down):
		if !ctx.IsOpen() {
			return []types.Action{types.OpenAction{}}, true
		}
		return []types.Action{types.HoverAction{Direction: "next"}}, true

	case key.Matches(msg, m.keys.Up):
		if !ctx.IsOpen() {
			return []types.Action{types.OpenAction{}}, true
		}
		return []types.Action{types.HoverAction{Direction: "prev"}}, true

	case key.Matches(msg, m.keys.Select):
		if !ctx.IsOpen() {
			return []types.Action{types.OpenAction{}}, true
		}
		if ctx.HasHover() {
			return []types.Action{types.CommitAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Close):
		return []types.Action{types.BlurAction{}}, true

	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearAction{}}, true

	case key.Matches(msg, m.keys.Unselect):
		// Backspace on an empty multi-select input removes the last value
		if ctx.InputEmpty() && ctx.IsMulti() && ctx.HasSelection() {
			return []types.Action{types.UnselectLastAction{}}, true
		}
	}

	// Let the handler update the text input
	return nil, false
}
