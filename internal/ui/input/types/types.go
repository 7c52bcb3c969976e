package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeBlurred: the control does not have focus; keys only focus it
	ModeBlurred Mode = iota
	// ModeFocused: the control has focus; keys edit text and drive the menu
	ModeFocused
)

func (m Mode) String() string {
	if m == ModeFocused {
		return "focused"
	}
	return "blurred"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to widget state needed for input handling
type Context interface {
	IsOpen() bool
	IsMulti() bool
	InputEmpty() bool
	HasSelection() bool
	HasHover() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
