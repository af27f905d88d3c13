package navigation

import (
	"rackbrowser/internal/ui/logic"
	"rackbrowser/internal/ui/services/query"
)

const defaultViewportHeight = 20

// Service moves the selection cursor over the selectable rows and keeps
// the viewport on it. Movement clamps at both ends and never wraps.
type Service struct {
	state    *State
	rows     Rows
	viewport *logic.Viewport
}

// NewService creates a navigation service over rows
func NewService(rows Rows) *Service {
	s := &Service{
		state: &State{
			Cursor:         -1,
			ViewportHeight: defaultViewportHeight,
		},
		rows:     rows,
		viewport: logic.NewViewport(defaultViewportHeight),
	}
	return s
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset, in raw rows
func (s *Service) GetViewportOffset() int {
	return s.viewport.Offset()
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.viewport.Height()
}

// Window returns the raw row range currently on screen
func (s *Service) Window() (int, int) {
	return s.viewport.Window(len(s.rows.Rows()))
}

// SetViewportHeight updates the number of rows the list can show
func (s *Service) SetViewportHeight(height int) {
	s.viewport.SetHeight(height)
	s.state.ViewportHeight = s.viewport.Height()
	s.ensureVisible()
}

// Reset puts the cursor on the first selectable row, or -1 when the
// list has none, and scrolls to the top
func (s *Service) Reset() {
	s.state.Count = s.rows.SelectableCount()
	if s.state.Count == 0 {
		s.state.Cursor = -1
	} else {
		s.state.Cursor = 0
	}
	s.viewport.Reset()
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	s.state.Count = s.rows.SelectableCount()
	if s.state.Count == 0 {
		return
	}

	switch direction {
	case DirectionUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - 1)
	case DirectionDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + 1)
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - s.pageSize())
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + s.pageSize())
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.state.Count - 1
	}

	s.ensureVisible()
}

// MoveUp moves the cursor one selectable row up
func (s *Service) MoveUp() { s.Navigate(DirectionUp) }

// MoveDown moves the cursor one selectable row down
func (s *Service) MoveDown() { s.Navigate(DirectionDown) }

// MoveToIndex moves cursor to a selectable index, clamped
func (s *Service) MoveToIndex(index int) {
	s.state.Count = s.rows.SelectableCount()
	if s.state.Count == 0 {
		return
	}
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

func (s *Service) pageSize() int {
	size := s.viewport.Height() - 1
	if size < 1 {
		size = 1
	}
	return size
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.state.Count-1 {
		return s.state.Count - 1
	}
	return index
}

func (s *Service) ensureVisible() {
	rows := s.rows.Rows()
	row := s.rows.RowIndex(s.state.Cursor)
	headerAbove := row > 0 && rows[row-1].Kind == query.RowSectionHeader
	s.viewport.Ensure(row, len(rows), headerAbove)
	s.state.ViewportOffset = s.viewport.Offset()
}
