package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"wastelookup/internal/domain"
	"wastelookup/internal/eventbus"
	"wastelookup/internal/storage"
)

// StorageKey is the key favourites are persisted under.
const StorageKey = "favourites"

// Store is the persisted favourites collection. Every toggle rewrites the
// whole collection under StorageKey before the in-memory copy changes.
type Store struct {
	mu         sync.RWMutex
	collection Collection
	kv         storage.Store
	bus        eventbus.EventBus
	discarded  bool // stored value was corrupt at load
}

// Load reads persisted favourites from kv. A missing key, a value that is
// not a JSON array of entries, or an unreadable store all yield an empty
// collection; corrupt data is never surfaced as an error.
func Load(ctx context.Context, kv storage.Store) *Store {
	s := &Store{kv: kv}
	s.collection, s.discarded = loadPersisted(ctx, kv)
	return s
}

// LoadPersisted reads the collection stored under StorageKey.
func LoadPersisted(ctx context.Context, kv storage.Store) Collection {
	c, _ := loadPersisted(ctx, kv)
	return c
}

// loadPersisted also reports whether a stored value had to be thrown away
func loadPersisted(ctx context.Context, kv storage.Store) (Collection, bool) {
	raw, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		log.Printf("Could not read favourites, starting empty: %v", err)
		return NewCollection(nil), false
	}
	if !ok {
		return NewCollection(nil), false
	}

	entries, err := Decode(raw)
	if err != nil {
		log.Printf("Discarding corrupt favourites: %v", err)
		return NewCollection(nil), true
	}
	log.Printf("Found %d saved favourites", len(entries))
	return NewCollection(entries), false
}

// SetEventBus makes the store publish FavoritesChangedEvent.
func (s *Store) SetEventBus(bus eventbus.EventBus) {
	s.bus = bus
	if bus != nil {
		bus.Publish(eventbus.FavoritesLoadedEvent{Count: s.Collection().Len(), Discarded: s.discarded})
	}
}

// Collection returns the current favourites.
func (s *Store) Collection() Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection
}

// Contains reports whether title is a favourite.
func (s *Store) Contains(title string) bool {
	return s.Collection().Contains(title)
}

// Toggle adds or removes entry and persists the result. If the write fails
// the in-memory collection is left unchanged and the error is returned.
func (s *Store) Toggle(ctx context.Context, entry domain.CatalogEntry) (Collection, error) {
	s.mu.Lock()
	next := s.collection.Toggle(entry)

	raw, err := Encode(next)
	if err != nil {
		current := s.collection
		s.mu.Unlock()
		return current, err
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		current := s.collection
		s.mu.Unlock()
		return current, fmt.Errorf("write %s: %w", StorageKey, err)
	}
	s.collection = next
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(eventbus.FavoritesChangedEvent{
			Title:     entry.Title,
			Favorited: next.Contains(entry.Title),
			Count:     next.Len(),
		})
	}
	return next, nil
}

// Encode serialises the collection as a JSON array; empty encodes as [].
func Encode(c Collection) (string, error) {
	data, err := json.Marshal(c.Entries())
	if err != nil {
		return "", fmt.Errorf("failed to encode favourites: %w", err)
	}
	return string(data), nil
}

// Decode parses a persisted JSON array of entries.
func Decode(raw string) ([]domain.CatalogEntry, error) {
	var entries []domain.CatalogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("invalid favourites JSON: %w", err)
	}
	return entries, nil
}
