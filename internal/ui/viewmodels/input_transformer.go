package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputTransformer turns the text input widget into view text
type InputTransformer struct {
	textInput *textinput.Model
	focused   bool
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput *textinput.Model) *InputTransformer {
	return &InputTransformer{
		textInput: textInput,
	}
}

// SetFocused records whether the control has focus
func (it *InputTransformer) SetFocused(focused bool) {
	it.focused = focused
}

// Focused reports whether the control has focus
func (it *InputTransformer) Focused() bool {
	return it.focused
}

// GetInputView renders the text input. An empty input shows the selected
// label in single mode, nothing once multi values are shown as chips, and
// the placeholder otherwise.
func (it *InputTransformer) GetInputView(placeholder, selectedLabel string, hasChips bool) string {
	if it.textInput == nil {
		return ""
	}
	switch {
	case selectedLabel != "":
		it.textInput.Placeholder = selectedLabel
	case hasChips:
		it.textInput.Placeholder = ""
	default:
		it.textInput.Placeholder = placeholder
	}
	return it.textInput.View()
}
