package views

// HitKind names the part of the view under a mouse position
type HitKind int

const (
	HitNone HitKind = iota
	HitControl
	HitClear
	HitRow
)

// Hit is the result of a hit test. Row is an index into the visible
// option list when Kind is HitRow.
type Hit struct {
	Kind HitKind
	Row  int
}

// HitTest maps a mouse position onto the view rendered from state
func (r *Renderer) HitTest(state ViewState, x, y int) Hit {
	if y == 0 {
		_, clearX := r.renderControl(state)
		if clearX >= 0 && x >= clearX-1 {
			return Hit{Kind: HitClear}
		}
		return Hit{Kind: HitControl}
	}

	if !state.Open || state.Disabled || state.Total == 0 {
		return Hit{Kind: HitNone}
	}

	// Menu starts on the line after the control
	first := 1
	if state.Offset > 0 {
		first++
	}
	i := y - first
	if i < 0 || i >= len(state.Rows) {
		return Hit{Kind: HitNone}
	}
	return Hit{Kind: HitRow, Row: state.Offset + i}
}
