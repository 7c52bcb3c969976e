package navigation

// Service keeps the hovered row inside the menu's scroll window
type Service struct {
	state *State
}

// NewService creates a new viewport of the given height
func NewService(height int) *Service {
	s := &Service{state: &State{}}
	s.SetViewportHeight(height)
	return s
}

// SetViewportHeight updates the number of rows shown at once
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = DefaultMenuHeight
	}
	s.state.Height = height
	s.clamp()
}

// Height returns the number of rows shown at once
func (s *Service) Height() int {
	return s.state.Height
}

// Offset returns the first visible row
func (s *Service) Offset() int {
	return s.state.Offset
}

// EnsureVisible scrolls so that index is inside the window over total rows.
// A negative index only re-clamps the window.
func (s *Service) EnsureVisible(index, total int) {
	s.state.Total = total

	if index >= 0 && index < total {
		if index < s.state.Offset {
			s.state.Offset = index
		} else if index >= s.state.Offset+s.state.Height {
			s.state.Offset = index - s.state.Height + 1
		}
	}
	s.clamp()
}

// Reset scrolls back to the top
func (s *Service) Reset() {
	s.state.Offset = 0
}

// Window returns the [start, end) range of rows to render
func (s *Service) Window() (int, int) {
	end := s.state.Offset + s.state.Height
	if end > s.state.Total {
		end = s.state.Total
	}
	return s.state.Offset, end
}

// HasMoreAbove reports whether rows are hidden above the window
func (s *Service) HasMoreAbove() bool {
	return s.state.Offset > 0
}

// HasMoreBelow reports whether rows are hidden below the window
func (s *Service) HasMoreBelow() bool {
	return s.state.Offset+s.state.Height < s.state.Total
}

func (s *Service) clamp() {
	maxOffset := s.state.Total - s.state.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.state.Offset > maxOffset {
		s.state.Offset = maxOffset
	}
	if s.state.Offset < 0 {
		s.state.Offset = 0
	}
}
