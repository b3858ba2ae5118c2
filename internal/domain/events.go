package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoadStarted EventType = "CatalogLoadStarted"
	EventCatalogLoaded      EventType = "CatalogLoaded"
	EventCatalogLoadFailed  EventType = "CatalogLoadFailed"
	EventSearchCompleted    EventType = "SearchCompleted"
	EventFavoritesLoaded    EventType = "FavoritesLoaded"
	EventFavoritesChanged   EventType = "FavoritesChanged"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadStartedEvent is emitted when the catalog request is issued
type CatalogLoadStartedEvent struct {
	URL string
}

func (e CatalogLoadStartedEvent) Type() EventType { return EventCatalogLoadStarted }

// CatalogLoadedEvent is emitted when the catalog was fetched and decoded
type CatalogLoadedEvent struct {
	Count int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogLoadFailedEvent is emitted when the catalog could not be loaded
type CatalogLoadFailedEvent struct {
	Err error
}

func (e CatalogLoadFailedEvent) Type() EventType { return EventCatalogLoadFailed }

// SearchCompletedEvent is emitted every time the filter runs
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
	Debounced  bool // false when triggered by an explicit submit
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// FavoritesLoadedEvent is emitted once persisted favorites have been read
type FavoritesLoadedEvent struct {
	Count     int
	Discarded bool // persisted value existed but could not be decoded
}

func (e FavoritesLoadedEvent) Type() EventType { return EventFavoritesLoaded }

// FavoritesChangedEvent is emitted after a toggle was persisted
type FavoritesChangedEvent struct {
	Title     string
	Favorited bool // true when the entry was added
	Count     int
}

func (e FavoritesChangedEvent) Type() EventType { return EventFavoritesChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
