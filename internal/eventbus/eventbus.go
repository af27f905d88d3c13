package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/charmbracelet/log"

	"rackbrowser/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCatalogLoaded      = domain.EventCatalogLoaded
	EventFavoriteToggled    = domain.EventFavoriteToggled
	EventFavoritesLoaded    = domain.EventFavoritesLoaded
	EventFavoritesSaved     = domain.EventFavoritesSaved
	EventModuleInstantiated = domain.EventModuleInstantiated
	EventModuleRemoved      = domain.EventModuleRemoved
	EventError              = domain.EventError
	EventConfigLoaded       = domain.EventConfigLoaded
)

// Re-export domain event types
type CatalogLoadedEvent = domain.CatalogLoadedEvent
type FavoriteToggledEvent = domain.FavoriteToggledEvent
type FavoritesLoadedEvent = domain.FavoritesLoadedEvent
type FavoritesSavedEvent = domain.FavoritesSavedEvent
type ModuleInstantiatedEvent = domain.ModuleInstantiatedEvent
type ModuleRemovedEvent = domain.ModuleRemovedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	handlerWG sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	log.Debug("eventbus: publishing", "event", event.Type())

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Warn("eventbus: channel full, dropping event", "event", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher after delivering queued events and waits for
// running handlers to return.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
	b.handlerWG.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.handlerWG.Add(1)
		go func(h EventHandler, eventType EventType) {
			defer b.handlerWG.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error("eventbus: handler panic", "event", eventType, "panic", r, "stack", string(debug.Stack()))
				}
			}()
			h(event)
		}(s.handler, event.Type())
	}
}
