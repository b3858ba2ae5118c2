package main

import (
	"log"

	"wastelookup/internal/eventbus"
)

// logEvents subscribes log handlers for the domain events
func logEvents(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Loaded config from %s", event.Path)
		}
	})

	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})

	bus.Subscribe(eventbus.EventCatalogLoadStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CatalogLoadStartedEvent); ok {
			log.Printf("Requesting catalog from %s", event.URL)
		}
	})

	bus.Subscribe(eventbus.EventCatalogLoadFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CatalogLoadFailedEvent); ok {
			log.Printf("Catalog unavailable for this session: %v", event.Err)
		}
	})

	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		// Only submits; debounced runs fire on every pause in typing
		if event, ok := e.(eventbus.SearchCompletedEvent); ok && !event.Debounced {
			log.Printf("Search submitted for '%s': %d matches", event.Query, event.MatchCount)
		}
	})

	bus.Subscribe(eventbus.EventFavoritesLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FavoritesLoadedEvent); ok {
			if event.Discarded {
				log.Printf("Stored favourites were unreadable and have been ignored")
			}
			log.Printf("Loaded %d favourites", event.Count)
		}
	})

	bus.Subscribe(eventbus.EventFavoritesChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FavoritesChangedEvent); ok {
			verb := "Removed"
			if event.Favorited {
				verb = "Added"
			}
			log.Printf("%s favourite %q, %d total", verb, event.Title, event.Count)
		}
	})

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s", event.Message)
		}
	})
}
