package coordinator

import (
	"rackbrowser/internal/domain"
	"rackbrowser/internal/rack"
	"rackbrowser/internal/ui/services/query"
)

// Host places modules chosen in the browser
type Host interface {
	Instantiate(m *domain.ModuleDescriptor) (rack.Handle, error)
}

// FavoriteStore is what the browser needs from the favorites set
type FavoriteStore interface {
	query.Favorites
	Toggle(m *domain.ModuleDescriptor) bool
	Subscribe(fn func()) func()
}

// OutcomeKind says what activating a row did
type OutcomeKind int

const (
	// OutcomeNone means nothing was selected
	OutcomeNone OutcomeKind = iota
	// OutcomeFiltered means a category row narrowed or reset the filter
	OutcomeFiltered
	// OutcomeInstantiated means a module was placed and the browser closed
	OutcomeInstantiated
	// OutcomeFailed means the host refused the module; the browser stays open
	OutcomeFailed
)

// Outcome reports the result of ActivateSelected
type Outcome struct {
	Kind   OutcomeKind
	Module *domain.ModuleDescriptor
	Handle rack.Handle
	Err    error
}

// BrowserClosedEvent is published on the UI bus when the browser closes
type BrowserClosedEvent struct {
	Cancelled bool
}

// ResultsChangedEvent is published after every regeneration
type ResultsChangedEvent struct {
	Rows       int
	Selectable int
}
