package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"comboselect/internal/ui/input/types"
)

// BlurredMode handles keys while the control does not have focus
type BlurredMode struct {
	keys types.KeyMap
}

func NewBlurredMode(keys types.KeyMap) *BlurredMode {
	return &BlurredMode{keys: keys}
}

func (m *BlurredMode) Name() string {
	return "blurred"
}

func (m *BlurredMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BlurredMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BlurredMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true

	case key.Matches(msg, m.keys.Done):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Focus, m.keys.Select, m.keys.Down, m.keys.Up):
		// Any navigation key gives the control focus
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFocused}}, true

	case key.Matches(msg, m.keys.Clear):
		if ctx.HasSelection() {
			return []types.Action{types.ClearAction{}}, true
		}
	}

	return nil, false
}
