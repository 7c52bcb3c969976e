package coordinator

import (
	"comboselect/internal/ui/services/hover"
	"comboselect/internal/ui/services/selection"
)

// Snapshot is the read-only state handed to the rendering layer
type Snapshot[T comparable] struct {
	IsOpen         bool
	InputValue     string
	VisibleOptions []T
	Hovered        hover.State[T]
	Selection      selection.Value[T]
	Loading        bool
	Disabled       bool
	Autofocus      bool
}

// HoveredOption returns the hovered option, if any
func (s Snapshot[T]) HoveredOption() (T, bool) {
	return s.Hovered.Option, s.Hovered.Present
}

// IsHovered reports whether the visible row at index is hovered
func (s Snapshot[T]) IsHovered(index int) bool {
	return s.Hovered.Present && s.Hovered.Index == index
}

// IsSelected reports whether opt is part of the selection
func (s Snapshot[T]) IsSelected(opt T) bool {
	return s.Selection.Contains(opt)
}
