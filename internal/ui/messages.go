package ui

import (
	"wastelookup/internal/domain"
	"wastelookup/internal/eventbus"
	"wastelookup/internal/search"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// catalogLoadedMsg carries the settled catalog load
type catalogLoadedMsg struct {
	state domain.LoadState
}

// debounceMsg is delivered once the debounce window after a keystroke
// elapsed
type debounceMsg struct {
	ticket search.Ticket
}

// clearStatusMsg clears the status bar unless a newer message replaced it
type clearStatusMsg struct {
	id int
}

// pagerClosedMsg contains the result of showing an entry in the pager
type pagerClosedMsg struct {
	title string
	err   error
}
