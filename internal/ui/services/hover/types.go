package hover

// NoIndex marks the absence of a hovered option
const NoIndex = -1

// State is the hovered row of the visible option list.
// Index is NoIndex exactly when Present is false.
type State[T any] struct {
	Index   int
	Option  T
	Present bool
}

// Absent returns the empty hover state
func Absent[T any]() State[T] {
	return State[T]{Index: NoIndex}
}
