package selection

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"comboselect/internal/eventbus"
)

// Service holds the committed selection
type Service[T comparable] struct {
	state *State[T]
	bus   eventbus.EventBus
}

// NewSingle creates a single-value selection, optionally pre-set
func NewSingle[T comparable](bus eventbus.EventBus, initial T, ok bool) *Service[T] {
	return &Service[T]{
		state: &State[T]{
			Mode:     ModeSingle,
			value:    initial,
			hasValue: ok,
		},
		bus: busOrNop(bus),
	}
}

// NewMulti creates a multi-value selection. Duplicates in initial are dropped.
func NewMulti[T comparable](bus eventbus.EventBus, initial []T) *Service[T] {
	values := orderedmap.New[T, struct{}]()
	for _, v := range initial {
		values.Set(v, struct{}{})
	}
	return &Service[T]{
		state: &State[T]{
			Mode:   ModeMulti,
			values: values,
		},
		bus: busOrNop(bus),
	}
}

func busOrNop(bus eventbus.EventBus) eventbus.EventBus {
	if bus == nil {
		return eventbus.Nop()
	}
	return bus
}

// Mode returns the selection mode
func (s *Service[T]) Mode() Mode {
	return s.state.Mode
}

// IsMulti reports whether this is a multi-value selection
func (s *Service[T]) IsMulti() bool {
	return s.state.Mode == ModeMulti
}

// Select commits opt. Single mode replaces the value; multi mode appends
// opt unless it is already selected. Reports whether anything changed.
func (s *Service[T]) Select(opt T) bool {
	if s.state.Mode == ModeSingle {
		if s.state.hasValue && s.state.value == opt {
			return false
		}
		s.state.value = opt
		s.state.hasValue = true
	} else {
		if _, exists := s.state.values.Get(opt); exists {
			return false
		}
		s.state.values.Set(opt, struct{}{})
	}

	s.bus.Publish(eventbus.OptionSelectedEvent{Option: opt, Multi: s.IsMulti()})
	return true
}

// Unselect removes opt from the selection. Reports whether anything changed.
func (s *Service[T]) Unselect(opt T) bool {
	if s.state.Mode == ModeSingle {
		if !s.state.hasValue || s.state.value != opt {
			return false
		}
		var zero T
		s.state.value = zero
		s.state.hasValue = false
	} else {
		if _, existed := s.state.values.Delete(opt); !existed {
			return false
		}
	}

	s.bus.Publish(eventbus.OptionUnselectedEvent{Option: opt, Multi: s.IsMulti()})
	return true
}

// UnselectLast removes the most recently selected value.
// Reports the removed value, if any.
func (s *Service[T]) UnselectLast() (T, bool) {
	var zero T
	if s.state.Mode == ModeSingle {
		if !s.state.hasValue {
			return zero, false
		}
		v := s.state.value
		s.Unselect(v)
		return v, true
	}

	newest := s.state.values.Newest()
	if newest == nil {
		return zero, false
	}
	v := newest.Key
	s.Unselect(v)
	return v, true
}

// Clear empties the selection. Reports whether anything changed.
func (s *Service[T]) Clear() bool {
	removed := s.Count()
	if removed == 0 {
		return false
	}

	if s.state.Mode == ModeSingle {
		var zero T
		s.state.value = zero
		s.state.hasValue = false
	} else {
		s.state.values = orderedmap.New[T, struct{}]()
	}

	s.bus.Publish(eventbus.SelectionClearedEvent{Removed: removed})
	return true
}

// Contains reports whether opt is selected
func (s *Service[T]) Contains(opt T) bool {
	if s.state.Mode == ModeSingle {
		return s.state.hasValue && s.state.value == opt
	}
	_, ok := s.state.values.Get(opt)
	return ok
}

// Single returns the single value and whether one is set
func (s *Service[T]) Single() (T, bool) {
	if s.state.Mode != ModeSingle {
		var zero T
		return zero, false
	}
	return s.state.value, s.state.hasValue
}

// Values returns the selected values in selection order
func (s *Service[T]) Values() []T {
	if s.state.Mode == ModeSingle {
		if s.state.hasValue {
			return []T{s.state.value}
		}
		return nil
	}

	values := make([]T, 0, s.state.values.Len())
	for pair := s.state.values.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Key)
	}
	return values
}

// Count returns the number of selected values
func (s *Service[T]) Count() int {
	if s.state.Mode == ModeSingle {
		if s.state.hasValue {
			return 1
		}
		return 0
	}
	return s.state.values.Len()
}

// HasSelection returns true if anything is selected
func (s *Service[T]) HasSelection() bool {
	return s.Count() > 0
}

// Value returns a read-only copy of the selection
func (s *Service[T]) Value() Value[T] {
	if s.state.Mode == ModeSingle {
		return SingleValue(s.state.value, s.state.hasValue)
	}
	return MultiValue(s.Values())
}
