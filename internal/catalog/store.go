// Package catalog loads the waste-disposal catalog once per session.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"wastelookup/internal/domain"
	"wastelookup/internal/eventbus"
)

// ErrLoadFailed wraps every reason the catalog could not be loaded.
var ErrLoadFailed = errors.New("could not load catalog")

// Store holds the catalog entries. Load issues at most one request; its
// outcome, including a failure, is kept for the rest of the session.
type Store struct {
	fetcher Fetcher
	url     string
	bus     eventbus.EventBus

	once  sync.Once
	mu    sync.RWMutex
	state domain.LoadState
}

// NewStore creates a store that will load url through fetcher.
func NewStore(fetcher Fetcher, url string) *Store {
	return &Store{fetcher: fetcher, url: url}
}

// SetEventBus makes the store publish load events.
func (s *Store) SetEventBus(bus eventbus.EventBus) {
	s.bus = bus
}

// Load fetches and decodes the catalog on the first call and returns the
// resulting state. Later calls return the same state without fetching.
func (s *Store) Load(ctx context.Context) domain.LoadState {
	s.once.Do(func() {
		s.publish(eventbus.CatalogLoadStartedEvent{URL: s.url})

		entries, err := s.fetch(ctx)

		s.mu.Lock()
		if err != nil {
			s.state = domain.LoadState{Loaded: true, Err: err, Entries: []domain.CatalogEntry{}}
		} else {
			s.state = domain.LoadState{Loaded: true, Entries: entries}
		}
		s.mu.Unlock()

		if err != nil {
			log.Printf("Failed to load catalog from %s: %v", s.url, err)
			s.publish(eventbus.CatalogLoadFailedEvent{Err: err})
		} else {
			log.Printf("Loaded %d catalog entries from %s", len(entries), s.url)
			s.publish(eventbus.CatalogLoadedEvent{Count: len(entries)})
		}
	})
	return s.State()
}

// State returns the current load state. Entries is a copy.
func (s *Store) State() domain.LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	if st.Entries != nil {
		st.Entries = append([]domain.CatalogEntry(nil), st.Entries...)
	}
	return st
}

// Entries returns the loaded entries in endpoint order.
func (s *Store) Entries() []domain.CatalogEntry {
	return s.State().Entries
}

// Find returns the entry with the exact title.
func (s *Store) Find(title string) (domain.CatalogEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.state.Entries {
		if e.Title == title {
			return e, true
		}
	}
	return domain.CatalogEntry{}, false
}

func (s *Store) fetch(ctx context.Context) ([]domain.CatalogEntry, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	entries, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return entries, nil
}

func (s *Store) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// Decode parses a JSON array of catalog records.
func Decode(data []byte) ([]domain.CatalogEntry, error) {
	var entries []domain.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}
	if entries == nil {
		// a literal null decodes without error
		return nil, errors.New("invalid catalog JSON: expected an array")
	}
	return entries, nil
}
