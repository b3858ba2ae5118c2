package main

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"wastelookup/internal/eventbus"
	"wastelookup/internal/ui"
)

// Run starts the interactive lookup.
func (c *TUICmd) Run(deps *Dependencies) error {
	log.Printf("Creating UI model...")
	model := ui.NewModel(deps.Ctx, deps.Bus, deps.Config, deps.Catalog, deps.Favorites,
		ui.WithReadyMarker(deps.E2E))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(deps.Ctx))

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	done := make(chan struct{})

	// Forward events to the event channel
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}

	unsubscribe := []func(){
		deps.Bus.Subscribe(eventbus.EventFavoritesChanged, forwardEvent),
		deps.Bus.Subscribe(eventbus.EventError, forwardEvent),
	}
	defer func() {
		for _, u := range unsubscribe {
			u()
		}
	}()

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	if deps.ConfigErr != nil {
		deps.Bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("config: %v", deps.ConfigErr),
			Err:     deps.ConfigErr,
		})
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && deps.Ctx.Err() != nil {
			log.Printf("UI interrupted")
			return nil
		}
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
