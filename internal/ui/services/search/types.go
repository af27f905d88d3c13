package search

// State holds search state
type State struct {
	Query string
}

// Event types
type SearchChangedEvent struct {
	OldQuery string
	Query    string
}

type SearchClearedEvent struct {
	OldQuery string
}
