package selection

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mode is fixed for the lifetime of a selection
type Mode int

const (
	ModeSingle Mode = iota
	ModeMulti
)

func (m Mode) String() string {
	if m == ModeMulti {
		return "multi"
	}
	return "single"
}

// State holds selection state. Single uses value/hasValue, multi uses the
// insertion-ordered set.
type State[T comparable] struct {
	Mode     Mode
	value    T
	hasValue bool
	values   *orderedmap.OrderedMap[T, struct{}]
}

// Value is a read-only copy of the committed selection
type Value[T comparable] struct {
	Mode     Mode
	single   T
	hasValue bool
	multi    []T
}

// SingleValue builds a single-mode value
func SingleValue[T comparable](v T, ok bool) Value[T] {
	return Value[T]{Mode: ModeSingle, single: v, hasValue: ok}
}

// MultiValue builds a multi-mode value
func MultiValue[T comparable](vs []T) Value[T] {
	out := make([]T, len(vs))
	copy(out, vs)
	return Value[T]{Mode: ModeMulti, multi: out}
}

// Single returns the single value and whether one is set.
// Multi values always report false.
func (v Value[T]) Single() (T, bool) {
	return v.single, v.Mode == ModeSingle && v.hasValue
}

// Values returns the selected values in selection order.
// A set single value is returned as a one-element slice.
func (v Value[T]) Values() []T {
	if v.Mode == ModeMulti {
		out := make([]T, len(v.multi))
		copy(out, v.multi)
		return out
	}
	if v.hasValue {
		return []T{v.single}
	}
	return nil
}

// Len returns the number of selected values
func (v Value[T]) Len() int {
	if v.Mode == ModeMulti {
		return len(v.multi)
	}
	if v.hasValue {
		return 1
	}
	return 0
}

// IsEmpty reports whether nothing is selected
func (v Value[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Contains reports whether opt is selected
func (v Value[T]) Contains(opt T) bool {
	if v.Mode == ModeSingle {
		return v.hasValue && v.single == opt
	}
	for _, x := range v.multi {
		if x == opt {
			return true
		}
	}
	return false
}
