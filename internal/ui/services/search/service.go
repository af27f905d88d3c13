package search

import (
	"github.com/charmbracelet/log"

	"rackbrowser/internal/ui/logic"
	"rackbrowser/internal/ui/services/events"
)

// Service owns the free-text search query. Listeners on the bus
// regenerate the result list whenever it changes.
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// StartSearch replaces the query. Setting the same text again is a no-op.
func (s *Service) StartSearch(query string) {
	if query == s.state.Query {
		return
	}
	if query == "" {
		s.ClearSearch()
		return
	}

	old := s.state.Query
	s.state.Query = query
	log.Debug("search: query changed", "query", query)
	s.bus.Publish(SearchChangedEvent{OldQuery: old, Query: query})
}

// ClearSearch empties the query, publishing only if it was set
func (s *Service) ClearSearch() {
	if s.state.Query == "" {
		return
	}
	old := s.state.Query
	s.state.Query = ""
	s.bus.Publish(SearchClearedEvent{OldQuery: old})
}

// Reset empties the query without notifying listeners. Used when the
// caller regenerates itself right after.
func (s *Service) Reset() {
	s.state.Query = ""
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// ShouldHighlight reports whether text contains the current query
func (s *Service) ShouldHighlight(text string) bool {
	if s.state.Query == "" {
		return false
	}
	return logic.Matches(text, s.state.Query)
}
