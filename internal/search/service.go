package search

import (
	"log"
	"time"

	"wastelookup/internal/domain"
	"wastelookup/internal/eventbus"
)

// Service owns the search state and runs the filter on debounced input or
// explicit submit. It is not safe for concurrent use; the UI calls it from
// its update loop.
type Service struct {
	state     State
	entries   []domain.CatalogEntry
	debouncer *Debouncer
	bus       eventbus.EventBus
}

// NewService creates a search service with the given debounce window.
func NewService(window time.Duration) *Service {
	return &Service{
		state:     State{Matches: []domain.CatalogEntry{}},
		debouncer: NewDebouncer(window),
	}
}

// SetEventBus makes the service publish SearchCompletedEvent.
func (s *Service) SetEventBus(bus eventbus.EventBus) {
	s.bus = bus
}

// Debounce returns the window callers should wait before Fire.
func (s *Service) Debounce() time.Duration {
	return s.debouncer.Window()
}

// SetEntries installs the loaded catalog. An active query is re-run so
// results typed while the catalog was loading show up.
func (s *Service) SetEntries(entries []domain.CatalogEntry) {
	s.entries = entries
	if s.state.Searched && s.state.Query != "" {
		s.run(s.state.Query, false)
	}
}

// Input records a keystroke-driven change and returns the ticket to deliver
// back through Fire once the debounce window elapses.
func (s *Service) Input(query string) Ticket {
	return s.debouncer.Schedule(query)
}

// Fire runs the filter for t if no later input superseded it.
func (s *Service) Fire(t Ticket) bool {
	query, ok := s.debouncer.Fire(t)
	if !ok {
		return false
	}
	s.run(query, true)
	return true
}

// Submit runs the filter immediately, dropping any pending debounced run.
func (s *Service) Submit(query string) {
	s.debouncer.Cancel()
	s.run(query, false)
}

// Pending reports whether a debounced run is outstanding.
func (s *Service) Pending() bool {
	return s.debouncer.Pending()
}

// State returns a snapshot of the search state.
func (s *Service) State() State {
	st := s.state
	st.Matches = append([]domain.CatalogEntry{}, s.state.Matches...)
	return st
}

// ShowNoResults reports whether the "no results" message applies: a search
// was attempted, it matched nothing, and the catalog did not fail to load.
func (s *Service) ShowNoResults(loadFailed bool) bool {
	return s.state.Searched && len(s.state.Matches) == 0 && !loadFailed
}

func (s *Service) run(query string, debounced bool) {
	s.state.Query = query
	s.state.Searched = true
	s.state.Matches = Filter(query, s.entries)

	if query != "" {
		log.Printf("Search completed for '%s': found %d matches", query, len(s.state.Matches))
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.SearchCompletedEvent{
			Query:      query,
			MatchCount: len(s.state.Matches),
			Debounced:  debounced,
		})
	}
}
