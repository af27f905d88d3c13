// Package rack is the host canvas modules are instantiated into.
package rack

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"rackbrowser/internal/domain"
	"rackbrowser/internal/eventbus"
)

var (
	// ErrUnknownModule is returned for descriptors the rack's catalog does not hold
	ErrUnknownModule = errors.New("unknown module")
	// ErrNoSuchInstance is returned when removing a handle that is not in the rack
	ErrNoSuchInstance = errors.New("no such module instance")
)

// Resolver checks descriptors against the loaded catalog
type Resolver interface {
	Resolve(plugin, model string) (*domain.ModuleDescriptor, bool)
}

// Handle identifies one placed module instance
type Handle struct {
	ID  uuid.UUID
	Ref domain.ModuleRef
}

// String returns the short form of the instance id
func (h Handle) String() string {
	return h.ID.String()[:8]
}

// Instance is a module placed in the rack
type Instance struct {
	Handle  Handle
	Module  *domain.ModuleDescriptor
	Created time.Time
}

// Rack holds placed modules in placement order. Safe for concurrent use.
type Rack struct {
	mu        sync.RWMutex
	instances []Instance
	resolver  Resolver
	bus       eventbus.EventBus
}

// New creates an empty rack. resolver and bus may be nil; without a
// resolver any non-nil descriptor is accepted.
func New(resolver Resolver, bus eventbus.EventBus) *Rack {
	return &Rack{resolver: resolver, bus: bus}
}

// Instantiate places a new instance of m and returns its handle
func (r *Rack) Instantiate(m *domain.ModuleDescriptor) (Handle, error) {
	if m == nil {
		return Handle{}, fmt.Errorf("%w: nil descriptor", ErrUnknownModule)
	}
	if r.resolver != nil {
		if _, ok := r.resolver.Resolve(m.Plugin, m.Slug); !ok {
			return Handle{}, fmt.Errorf("%w: %s", ErrUnknownModule, m.Ref())
		}
	}

	h := Handle{ID: uuid.New(), Ref: m.Ref()}

	r.mu.Lock()
	r.instances = append(r.instances, Instance{Handle: h, Module: m, Created: time.Now()})
	r.mu.Unlock()

	log.Info("rack: module added", "module", m.Ref().String(), "handle", h.ID.String())
	if r.bus != nil {
		r.bus.Publish(eventbus.ModuleInstantiatedEvent{Ref: h.Ref, Handle: h.ID.String()})
	}
	return h, nil
}

// Remove deletes the instance with the given id
func (r *Rack) Remove(id uuid.UUID) error {
	r.mu.Lock()
	var removed *Instance
	for i := range r.instances {
		if r.instances[i].Handle.ID == id {
			inst := r.instances[i]
			removed = &inst
			r.instances = append(r.instances[:i], r.instances[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	if removed == nil {
		return fmt.Errorf("%w: %s", ErrNoSuchInstance, id)
	}
	log.Info("rack: module removed", "module", removed.Handle.Ref.String(), "handle", id.String())
	if r.bus != nil {
		r.bus.Publish(eventbus.ModuleRemovedEvent{Ref: removed.Handle.Ref, Handle: id.String()})
	}
	return nil
}

// Instances returns the placed modules in placement order
func (r *Rack) Instances() []Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Instance, len(r.instances))
	copy(out, r.instances)
	return out
}

// Len returns the number of placed modules
func (r *Rack) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}
