package logging

import (
	"github.com/charmbracelet/log"

	"rackbrowser/internal/eventbus"
)

// LogEvents records rack, favorites and config events in the log. The
// returned function unsubscribes.
func LogEvents(bus eventbus.EventBus) func() {
	unsubs := []func(){
		bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.ConfigLoadedEvent)
			log.Info("config: loaded", "path", ev.Path, "plugins_dir", ev.PluginsDir)
		}),
		bus.Subscribe(eventbus.EventFavoriteToggled, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.FavoriteToggledEvent)
			log.Info("favorites: toggled", "module", ev.Ref.String(), "favorite", ev.Favorite)
		}),
		bus.Subscribe(eventbus.EventFavoritesSaved, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.FavoritesSavedEvent)
			log.Info("favorites: saved", "path", ev.Path, "count", ev.Count)
		}),
		bus.Subscribe(eventbus.EventModuleInstantiated, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.ModuleInstantiatedEvent)
			log.Info("rack: module added", "module", ev.Ref.String(), "handle", ev.Handle)
		}),
		bus.Subscribe(eventbus.EventModuleRemoved, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.ModuleRemovedEvent)
			log.Info("rack: module removed", "module", ev.Ref.String(), "handle", ev.Handle)
		}),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
