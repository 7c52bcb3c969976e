package navigation

// DefaultMenuHeight is the number of option rows shown at once
const DefaultMenuHeight = 8

// State holds the menu scroll window
type State struct {
	Offset int // first visible row
	Height int // rows shown at once
	Total  int // rows in the visible option list
}
