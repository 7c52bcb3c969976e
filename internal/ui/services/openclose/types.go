package openclose

// State of the option menu
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Trigger names the event that drove a transition
type Trigger string

const (
	TriggerFocus  Trigger = "focus"
	TriggerBlur   Trigger = "blur"
	TriggerType   Trigger = "type"
	TriggerCommit Trigger = "commit"
	TriggerClear  Trigger = "clear"
)
