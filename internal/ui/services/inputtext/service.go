package inputtext

import (
	"comboselect/internal/eventbus"
)

// Service holds the literal text typed by the user. It is independent of
// the committed selection.
type Service struct {
	value string
	bus   eventbus.EventBus
}

// NewService creates an empty input text store
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.Nop()
	}
	return &Service{bus: bus}
}

// Set replaces the text and reports whether it changed
func (s *Service) Set(text string) bool {
	if text == s.value {
		return false
	}
	s.value = text
	s.bus.Publish(eventbus.InputChangedEvent{Text: text})
	return true
}

// Clear empties the text and reports whether it changed
func (s *Service) Clear() bool {
	return s.Set("")
}

// Value returns the current text
func (s *Service) Value() string {
	return s.value
}

// IsEmpty reports whether no text is typed
func (s *Service) IsEmpty() bool {
	return s.value == ""
}
