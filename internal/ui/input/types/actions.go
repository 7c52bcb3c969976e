package types

// Focus actions
type OpenAction struct{}

func (a OpenAction) Type() string { return "open" }

type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }

// Hover actions
type HoverAction struct {
	Direction string // "next" or "prev"
}

func (a HoverAction) Type() string { return "hover" }

// Selection actions
type CommitAction struct{}

func (a CommitAction) Type() string { return "commit" }

type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

type UnselectLastAction struct{}

func (a UnselectLastAction) Type() string { return "unselect_last" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Other actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for a confirmed pick
}

func (a QuitAction) Type() string { return "quit" }
