package handlers

import (
	"fmt"

	"wastelookup/internal/eventbus"
	"wastelookup/internal/ui/state"
)

// EventHandler turns domain events forwarded from the bus into status bar
// messages
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes a domain event and reports whether the status bar
// changed
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) bool {
	switch e := event.(type) {
	case eventbus.FavoritesChangedEvent:
		if e.Favorited {
			h.state.SetStatus(fmt.Sprintf("Added %s to favourites", e.Title), false)
		} else {
			h.state.SetStatus(fmt.Sprintf("Removed %s from favourites", e.Title), false)
		}
		return true

	case eventbus.ErrorEvent:
		h.state.SetStatus(fmt.Sprintf("Error: %s", e.Message), true)
		return true
	}

	return false
}
