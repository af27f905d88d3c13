package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded      EventType = "CatalogLoaded"
	EventFavoriteToggled    EventType = "FavoriteToggled"
	EventFavoritesLoaded    EventType = "FavoritesLoaded"
	EventFavoritesSaved     EventType = "FavoritesSaved"
	EventModuleInstantiated EventType = "ModuleInstantiated"
	EventModuleRemoved      EventType = "ModuleRemoved"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the plugin catalog has been built
type CatalogLoadedEvent struct {
	Plugins int
	Modules int
	Skipped int // manifests rejected during load
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// FavoriteToggledEvent is emitted whenever a module enters or leaves the favorites set
type FavoriteToggledEvent struct {
	Ref      ModuleRef
	Favorite bool
}

func (e FavoriteToggledEvent) Type() EventType { return EventFavoriteToggled }

// FavoritesLoadedEvent is emitted after the persisted favorites were merged in
type FavoritesLoadedEvent struct {
	Path     string
	Resolved int
	Skipped  int
}

func (e FavoritesLoadedEvent) Type() EventType { return EventFavoritesLoaded }

// FavoritesSavedEvent is emitted after the favorites document was written
type FavoritesSavedEvent struct {
	Path  string
	Count int
}

func (e FavoritesSavedEvent) Type() EventType { return EventFavoritesSaved }

// ModuleInstantiatedEvent is emitted when the host placed a module on the rack
type ModuleInstantiatedEvent struct {
	Ref    ModuleRef
	Handle string
}

func (e ModuleInstantiatedEvent) Type() EventType { return EventModuleInstantiated }

// ModuleRemovedEvent is emitted when a module instance is removed from the rack
type ModuleRemovedEvent struct {
	Ref    ModuleRef
	Handle string
}

func (e ModuleRemovedEvent) Type() EventType { return EventModuleRemoved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	PluginsDir string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
