package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeRack moves over the modules placed on the rack
	ModeRack Mode = iota
	// ModeBrowser routes keys to the module browser and its search field
	ModeBrowser
	// ModeConfirmRemove asks before removing a module from the rack
	ModeConfirmRemove
)

func (m Mode) String() string {
	switch m {
	case ModeBrowser:
		return "browser"
	case ModeConfirmRemove:
		return "confirm-remove"
	default:
		return "rack"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	RackCount() int
	RackCursor() int
	BrowserOpen() bool
	// CursorOnModule reports whether the browser cursor rests on a module row
	CursorOnModule() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
