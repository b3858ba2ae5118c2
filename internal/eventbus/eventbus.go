package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"wastelookup/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCatalogLoadStarted = domain.EventCatalogLoadStarted
	EventCatalogLoaded      = domain.EventCatalogLoaded
	EventCatalogLoadFailed  = domain.EventCatalogLoadFailed
	EventSearchCompleted    = domain.EventSearchCompleted
	EventFavoritesLoaded    = domain.EventFavoritesLoaded
	EventFavoritesChanged   = domain.EventFavoritesChanged
	EventError              = domain.EventError
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
)

// Re-export domain event types
type CatalogLoadStartedEvent = domain.CatalogLoadStartedEvent
type CatalogLoadedEvent = domain.CatalogLoadedEvent
type CatalogLoadFailedEvent = domain.CatalogLoadFailedEvent
type SearchCompletedEvent = domain.SearchCompletedEvent
type FavoritesLoadedEvent = domain.FavoritesLoadedEvent
type FavoritesChangedEvent = domain.FavoritesChangedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

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
	// Keystroke-driven searches are too chatty for the log
	if event.Type() != EventSearchCompleted {
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
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

// Close stops the dispatcher and waits for it to exit.
// Events still queued are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			// Events published before Close still reach their handlers
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

// deliver fans an event out to a snapshot of its subscribers
func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.invoke(s.handler, event)
	}
}

// invoke runs a handler, keeping a panic in one subscriber from killing the dispatcher
func (b *bus) invoke(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}
