package events

import (
	"fmt"
	"sync"
)

// Bus is a synchronous event bus for UI services. Handlers run on the
// publisher's goroutine, in subscription order, before Publish returns.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]Handler),
	}
}

// Subscribe registers a listener for an event type, as named by TypeOf
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish delivers an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.listeners[TypeOf(event)]...)
	b.mu.RUnlock()

	// Lock released so handlers may publish or subscribe
	for _, handler := range handlers {
		handler(event)
	}
}

// TypeOf returns the event type key used for subscriptions
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
