package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOptionSelected   EventType = "OptionSelected"
	EventOptionUnselected EventType = "OptionUnselected"
	EventSelectionCleared EventType = "SelectionCleared"
	EventMenuToggled      EventType = "MenuToggled"
	EventHoverChanged     EventType = "HoverChanged"
	EventInputChanged     EventType = "InputChanged"
	EventFilterRequested  EventType = "FilterRequested"
	EventFilterSettled    EventType = "FilterSettled"
	EventFilterDiscarded  EventType = "FilterDiscarded"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OptionSelectedEvent is emitted when an option is committed to the selection
type OptionSelectedEvent struct {
	Option any
	Multi  bool
}

func (e OptionSelectedEvent) Type() EventType { return EventOptionSelected }

// OptionUnselectedEvent is emitted when an option is removed from the selection
type OptionUnselectedEvent struct {
	Option any
	Multi  bool
}

func (e OptionUnselectedEvent) Type() EventType { return EventOptionUnselected }

// SelectionClearedEvent is emitted when the whole selection is cleared
type SelectionClearedEvent struct {
	Removed int // number of values that were selected
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// MenuToggledEvent is emitted when the option menu opens or closes
type MenuToggledEvent struct {
	Open    bool
	Trigger string // focus, blur, type, commit, clear
}

func (e MenuToggledEvent) Type() EventType { return EventMenuToggled }

// HoverChangedEvent is emitted when the hovered row changes
type HoverChangedEvent struct {
	OldIndex int
	NewIndex int
}

func (e HoverChangedEvent) Type() EventType { return EventHoverChanged }

// InputChangedEvent is emitted when the typed text changes
type InputChangedEvent struct {
	Text string
}

func (e InputChangedEvent) Type() EventType { return EventInputChanged }

// FilterRequestedEvent is emitted when a debounced recomputation is queued
type FilterRequestedEvent struct {
	Seq  uint64
	Text string
}

func (e FilterRequestedEvent) Type() EventType { return EventFilterRequested }

// FilterSettledEvent is emitted when a recomputation replaces the visible list
type FilterSettledEvent struct {
	Seq     uint64
	Text    string
	Visible int
}

func (e FilterSettledEvent) Type() EventType { return EventFilterSettled }

// FilterDiscardedEvent is emitted when a superseded recomputation fires
type FilterDiscardedEvent struct {
	Seq    uint64
	Latest uint64
}

func (e FilterDiscardedEvent) Type() EventType { return EventFilterDiscarded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
