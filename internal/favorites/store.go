// Package favorites keeps the user's favorite module set and persists it
// under the "favorites" key of the settings document.
package favorites

import (
	"sync"

	"github.com/charmbracelet/log"

	"rackbrowser/internal/domain"
	"rackbrowser/internal/eventbus"
)

// Resolver maps a stored (plugin, model) pair back to a catalog entry
type Resolver interface {
	Resolve(plugin, model string) (*domain.ModuleDescriptor, bool)
}

// Store is the process-wide favorites set. Insertion order is kept so
// the favorites section renders stably. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	order   []*domain.ModuleDescriptor
	members map[domain.ModuleRef]bool

	obsMu     sync.Mutex
	observers map[int]func()
	nextObsID int

	bus eventbus.EventBus
}

// NewStore creates an empty store. bus may be nil.
func NewStore(bus eventbus.EventBus) *Store {
	return &Store{
		members:   make(map[domain.ModuleRef]bool),
		observers: make(map[int]func()),
		bus:       bus,
	}
}

// IsFavorite reports whether ref is in the set
func (s *Store) IsFavorite(ref domain.ModuleRef) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members[ref]
}

// SetFavorite adds or removes m. Repeating the current state is a no-op
// and notifies nobody.
func (s *Store) SetFavorite(m *domain.ModuleDescriptor, favorite bool) {
	if m == nil {
		return
	}
	if !s.set(m, favorite) {
		return
	}
	log.Debug("favorites: changed", "module", m.Ref().String(), "favorite", favorite)
	s.notify()
	if s.bus != nil {
		s.bus.Publish(eventbus.FavoriteToggledEvent{Ref: m.Ref(), Favorite: favorite})
	}
}

// Toggle flips m's membership and returns the new state
func (s *Store) Toggle(m *domain.ModuleDescriptor) bool {
	if m == nil {
		return false
	}
	favorite := !s.IsFavorite(m.Ref())
	s.SetFavorite(m, favorite)
	return favorite
}

func (s *Store) set(m *domain.ModuleDescriptor, favorite bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref := m.Ref()
	if s.members[ref] == favorite {
		return false
	}
	if favorite {
		s.members[ref] = true
		s.order = append(s.order, m)
		return true
	}
	delete(s.members, ref)
	for i, fm := range s.order {
		if fm.Ref() == ref {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns the favorites in insertion order
func (s *Store) List() []*domain.ModuleDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ModuleDescriptor, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of favorites
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Subscribe registers fn to run after every effective change. The
// returned function removes it.
func (s *Store) Subscribe(fn func()) func() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Store) notify() {
	s.obsMu.Lock()
	fns := make([]func(), 0, len(s.observers))
	// Subscription order
	for id := 0; id < s.nextObsID; id++ {
		if fn, ok := s.observers[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Serialize returns every favorite as a (plugin, model) pair
func (s *Store) Serialize() []domain.ModuleRef {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := make([]domain.ModuleRef, 0, len(s.order))
	for _, m := range s.order {
		refs = append(refs, m.Ref())
	}
	return refs
}

// Deserialize adds every entry the resolver knows. Entries with an empty
// plugin or model, or that no longer resolve, are skipped. Existing
// favorites are kept. Returns the number of favorites added and the
// number of entries that did not resolve; duplicates count as neither.
func (s *Store) Deserialize(entries []domain.ModuleRef, r Resolver) (added, unresolved int) {
	for _, e := range entries {
		if e.Plugin == "" || e.Model == "" {
			log.Debug("favorites: skipping incomplete entry", "plugin", e.Plugin, "model", e.Model)
			unresolved++
			continue
		}
		m, ok := r.Resolve(e.Plugin, e.Model)
		if !ok {
			log.Debug("favorites: skipping unknown module", "module", e.String())
			unresolved++
			continue
		}
		if s.set(m, true) {
			added++
		}
	}
	if added > 0 {
		s.notify()
	}
	return added, unresolved
}
