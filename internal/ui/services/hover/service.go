package hover

import (
	"comboselect/internal/eventbus"
)

// Service tracks keyboard and mouse hover over the visible option list
type Service[T comparable] struct {
	state   State[T]
	bus     eventbus.EventBus
	queryFn func() []T // Function to get the current visible list
}

// NewService creates a new hover tracker with nothing hovered
func NewService[T comparable](bus eventbus.EventBus) *Service[T] {
	if bus == nil {
		bus = eventbus.Nop()
	}
	return &Service[T]{
		state: Absent[T](),
		bus:   bus,
	}
}

// SetQueryFunction sets the function to query the visible list
func (s *Service[T]) SetQueryFunction(fn func() []T) {
	s.queryFn = fn
}

// State returns the current hover state
func (s *Service[T]) State() State[T] {
	return s.state
}

// Index returns the hovered index, or NoIndex
func (s *Service[T]) Index() int {
	return s.state.Index
}

// Hovered returns the hovered option
func (s *Service[T]) Hovered() (T, bool) {
	return s.state.Option, s.state.Present
}

// HoverSelectedOrFirst hovers the selected option when it is visible at an
// index above zero, otherwise the first visible option. With nothing
// visible the hover is cleared.
func (s *Service[T]) HoverSelectedOrFirst(selected T, hasSelected bool) {
	options := s.options()
	if len(options) == 0 {
		s.Clear()
		return
	}

	if hasSelected {
		// NOTE: a selected option at index 0 takes the "first option" path,
		// which lands on the same row.
		if idx := indexOf(options, selected); idx > 0 {
			s.set(idx, options)
			return
		}
	}

	s.set(0, options)
}

// HoverNext moves the hover down one row, wrapping to the top
func (s *Service[T]) HoverNext() {
	if s.state.Index < 0 {
		return
	}
	options := s.options()
	if s.state.Index >= len(options) {
		s.Clear()
		return
	}

	index := s.state.Index + 1
	if index > len(options)-1 {
		index = 0
	}
	s.set(index, options)
}

// HoverPrev moves the hover up one row, wrapping to the bottom
func (s *Service[T]) HoverPrev() {
	if s.state.Index < 0 {
		return
	}
	options := s.options()
	if s.state.Index >= len(options) {
		s.Clear()
		return
	}

	index := s.state.Index - 1
	if index < 0 {
		index = len(options) - 1
	}
	s.set(index, options)
}

// HoverIndex hovers the row at index. Out of range indices are ignored.
func (s *Service[T]) HoverIndex(index int) {
	options := s.options()
	if index < 0 || index >= len(options) {
		return
	}
	s.set(index, options)
}

// Clear removes the hover
func (s *Service[T]) Clear() {
	if !s.state.Present && s.state.Index == NoIndex {
		return
	}
	old := s.state.Index
	s.state = Absent[T]()
	s.bus.Publish(eventbus.HoverChangedEvent{OldIndex: old, NewIndex: NoIndex})
}

func (s *Service[T]) set(index int, options []T) {
	old := s.state.Index
	s.state = State[T]{
		Index:   index,
		Option:  options[index],
		Present: true,
	}
	if old != index {
		s.bus.Publish(eventbus.HoverChangedEvent{OldIndex: old, NewIndex: index})
	}
}

func (s *Service[T]) options() []T {
	if s.queryFn == nil {
		return nil
	}
	return s.queryFn()
}

func indexOf[T comparable](options []T, target T) int {
	for i, opt := range options {
		if opt == target {
			return i
		}
	}
	return -1
}
