package openclose

import (
	"comboselect/internal/eventbus"
)

// Service gates whether the option menu is visible.
//
//	focus          -> Open
//	blur           -> Closed
//	commit(single) -> Closed
//	commit(multi)  -> unchanged
//	clear          -> Closed
//	type (Closed)  -> Open
type Service struct {
	state State
	bus   eventbus.EventBus
}

// NewService creates a closed controller
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.Nop()
	}
	return &Service{state: Closed, bus: bus}
}

// State returns the current state
func (s *Service) State() State {
	return s.state
}

// IsOpen reports whether the menu is visible
func (s *Service) IsOpen() bool {
	return s.state == Open
}

// Focus opens the menu
func (s *Service) Focus() bool {
	return s.transition(Open, TriggerFocus)
}

// Blur closes the menu
func (s *Service) Blur() bool {
	return s.transition(Closed, TriggerBlur)
}

// Commit reacts to a committed option. Multi-select keeps the menu open so
// more options can be picked.
func (s *Service) Commit(multi bool) bool {
	if multi {
		return false
	}
	return s.transition(Closed, TriggerCommit)
}

// ClearAction closes the menu after an explicit clear
func (s *Service) ClearAction() bool {
	return s.transition(Closed, TriggerClear)
}

// Type opens a closed menu when text is typed
func (s *Service) Type() bool {
	if s.state == Open {
		return false
	}
	return s.transition(Open, TriggerType)
}

func (s *Service) transition(to State, trigger Trigger) bool {
	if s.state == to {
		return false
	}
	s.state = to
	s.bus.Publish(eventbus.MenuToggledEvent{Open: to == Open, Trigger: string(trigger)})
	return true
}
