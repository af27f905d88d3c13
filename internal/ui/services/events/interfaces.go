package events

// Handler receives a published event
type Handler func(event interface{})

// EventBus publishes UI events to handlers keyed by TypeOf
type EventBus interface {
	Publish(event interface{})
	Subscribe(eventType string, handler func(interface{}))
}

// NullBus drops every event. Services fall back to it when built
// without a bus, as in unit tests.
type NullBus struct{}

func (*NullBus) Publish(interface{}) {}
func (*NullBus) Subscribe(string, func(interface{})) {}
