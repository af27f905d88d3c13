package navigation

import "rackbrowser/internal/ui/services/query"

// State holds all navigation-related state. Cursor indexes the selectable
// rows only and is -1 when there are none.
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Count          int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// Rows is the view of the result list the cursor moves over
type Rows interface {
	Rows() []query.Row
	SelectableCount() int
	RowIndex(i int) int
}
