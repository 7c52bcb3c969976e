package coordinator

import (
	"comboselect/internal/domain"
	"comboselect/internal/eventbus"
	"comboselect/internal/ui/services/filter"
	"comboselect/internal/ui/services/navigation"
	"comboselect/internal/ui/services/selection"
)

// Config is everything a select widget is constructed from
type Config[T comparable] struct {
	Options    []T                 // full option set
	Value      selection.Value[T]  // initial value; its Mode fixes single vs multi
	LabelKey   domain.LabelKey     // field used as the display label
	Label      domain.LabelFunc[T] // overrides LabelKey when set
	Filter     filter.Settings
	MenuHeight int
	Disabled   bool // advisory, enforced by the rendering layer
	Autofocus  bool // advisory, enforced by the rendering layer
	Bus        eventbus.EventBus
}

// NewConfig returns a single-select configuration with default settings
func NewConfig[T comparable](options []T) Config[T] {
	var zero T
	return Config[T]{
		Options:    options,
		Value:      selection.SingleValue(zero, false),
		LabelKey:   domain.DefaultLabelKey,
		Filter:     filter.DefaultSettings(),
		MenuHeight: navigation.DefaultMenuHeight,
	}
}

// None is an empty single-select value
func None[T comparable]() selection.Value[T] {
	var zero T
	return selection.SingleValue(zero, false)
}

// Single is a single-select value holding v
func Single[T comparable](v T) selection.Value[T] {
	return selection.SingleValue(v, true)
}

// Multi is a multi-select value holding vs, in order
func Multi[T comparable](vs ...T) selection.Value[T] {
	return selection.MultiValue(vs)
}
