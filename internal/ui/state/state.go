package state

// AppState contains the shell's own state. The browser keeps its filter,
// results and cursor in the coordinator; this is what surrounds it.
type AppState struct {
	// Rack selection
	RackCursor     int // index into the rack's instances, -1 when empty
	RackOffset     int // first instance line on screen
	RackViewHeight int // lines available for the instance list

	// UI state
	Width            int
	Height           int
	ShowHelp         bool
	HelpScrollOffset int    // scroll offset for help popup
	StatusMessage    string // status bar message
	StatusIsError    bool
	SavingFavorites  bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		RackCursor:     -1,
		RackViewHeight: 20, // Default
	}
}

// SetStatus shows an informational message in the status line
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error in the status line
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClampRackCursor keeps the rack cursor on an instance after the rack
// grew or shrank to count entries
func (s *AppState) ClampRackCursor(count int) {
	switch {
	case count == 0:
		s.RackCursor = -1
	case s.RackCursor < 0:
		s.RackCursor = 0
	case s.RackCursor >= count:
		s.RackCursor = count - 1
	}
	s.ensureRackVisible()
}

// MoveRackCursor moves the rack cursor by delta, clamped to the list
func (s *AppState) MoveRackCursor(delta, count int) {
	if count == 0 {
		s.RackCursor = -1
		return
	}
	s.RackCursor += delta
	s.ClampRackCursor(count)
}

// SetRackCursor moves the rack cursor to index, clamped to the list
func (s *AppState) SetRackCursor(index, count int) {
	s.RackCursor = index
	if count > 0 && index < 0 {
		s.RackCursor = 0
	}
	s.ClampRackCursor(count)
}

func (s *AppState) ensureRackVisible() {
	if s.RackCursor < 0 {
		s.RackOffset = 0
		return
	}
	if s.RackCursor < s.RackOffset {
		s.RackOffset = s.RackCursor
	}
	if s.RackViewHeight > 0 && s.RackCursor >= s.RackOffset+s.RackViewHeight {
		s.RackOffset = s.RackCursor - s.RackViewHeight + 1
	}
}
