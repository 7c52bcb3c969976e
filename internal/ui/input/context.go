package input

import "comboselect/internal/ui/coordinator"

// ModelContext implements the Context interface for the input handler
type ModelContext[T comparable] struct {
	Coordinator *coordinator.Coordinator[T]
}

// IsOpen returns true if the menu is open
func (c *ModelContext[T]) IsOpen() bool {
	return c.Coordinator.Menu.IsOpen()
}

// IsMulti returns true for multi-select widgets
func (c *ModelContext[T]) IsMulti() bool {
	return c.Coordinator.Selection.IsMulti()
}

// InputEmpty returns true if no text is typed
func (c *ModelContext[T]) InputEmpty() bool {
	return c.Coordinator.Input.IsEmpty()
}

// HasSelection returns true if any value is selected
func (c *ModelContext[T]) HasSelection() bool {
	return c.Coordinator.Selection.HasSelection()
}

// HasHover returns true if a visible row is hovered
func (c *ModelContext[T]) HasHover() bool {
	_, ok := c.Coordinator.Hover.Hovered()
	return ok
}
