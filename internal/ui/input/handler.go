package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"comboselect/internal/ui/input/modes"
	"comboselect/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Text typed into the control
	keys        types.KeyMap
}

func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the view layer

	h := &Handler{
		currentMode: types.ModeBlurred,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	// Register all mode handlers
	h.modes[types.ModeBlurred] = modes.NewBlurredMode(keys)
	h.modes[types.ModeFocused] = modes.NewFocusedMode(keys)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// Keys nobody wants outside the text input are dropped
	if !consumed && h.currentMode != types.ModeFocused {
		return nil, nil
	}

	var cmds []tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			modeActions, cmd := h.changeMode(changeMode.Mode, ctx)
			allActions = append(allActions, modeActions...)
			cmds = append(cmds, cmd)
		} else {
			allActions = append(allActions, action)
		}
	}

	// Pass unconsumed keys to the text input while focused
	if h.currentMode == types.ModeFocused && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmds = append(cmds, textCmd)
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
		}
	}

	return allActions, tea.Batch(cmds...)
}

// Focus moves into focused mode, returning the mode's entry actions
func (h *Handler) Focus(ctx types.Context) ([]types.Action, tea.Cmd) {
	return h.changeMode(types.ModeFocused, ctx)
}

// Blur moves into blurred mode, returning the mode's exit actions
func (h *Handler) Blur(ctx types.Context) ([]types.Action, tea.Cmd) {
	return h.changeMode(types.ModeBlurred, ctx)
}

func (h *Handler) changeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}

	var actions []types.Action

	// Exit current mode
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = mode

	// Enter new mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	// Handle text input focus
	var cmd tea.Cmd
	if mode == types.ModeFocused {
		cmd = h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}

	return actions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// IsFocused reports whether the control has focus
func (h *Handler) IsFocused() bool {
	return h.currentMode == types.ModeFocused
}

// TextInput returns the text input model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Keys returns the key bindings
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// SyncText sets the text input to text, keeping the cursor at the end.
// The coordinator owns the text; this keeps the widget in step with it.
func (h *Handler) SyncText(text string) {
	if h.textInput.Value() == text {
		return
	}
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

// SetPlaceholder sets the text shown while the input is empty
func (h *Handler) SetPlaceholder(placeholder string) {
	h.textInput.Placeholder = placeholder
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeFocused {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeBlurred
	h.textInput.Reset()
	h.textInput.Blur()
}
