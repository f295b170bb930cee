package handlers

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"starseek/internal/eventbus"
	"starseek/internal/ui/coordinator"
	"starseek/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state    *state.AppState
	dispatch func(coordinator.Event)
	finished bool // a loaded or failed event has been handled
}

// NewEventHandler creates a new event handler that forwards catalog changes to dispatch
func NewEventHandler(appState *state.AppState, dispatch func(coordinator.Event)) *EventHandler {
	return &EventHandler{
		state:    appState,
		dispatch: dispatch,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadStartedEvent:
		// Bus delivery is unordered; a late start must not revive the spinner
		if h.finished {
			return nil
		}
		h.state.Loading = true
		h.state.Sources = e.Sources
		h.state.LoadError = ""

	case eventbus.SourceLoadedEvent:
		if e.Skipped > 0 {
			h.state.StatusMessage = fmt.Sprintf("Skipped %d unnamed entries in %s", e.Skipped, e.Source)
		}

	case eventbus.CatalogLoadedEvent:
		h.finished = true
		h.state.Loading = false
		h.state.CatalogSize = e.Catalog.Len()
		log.Printf("Catalog ready: %d records", h.state.CatalogSize)
		h.dispatch(coordinator.CatalogReady{Catalog: e.Catalog})

	case eventbus.CatalogLoadFailedEvent:
		h.finished = true
		h.state.Loading = false
		h.state.CatalogSize = 0
		h.state.LoadError = "catalog unavailable"
		if e.Err != nil {
			h.state.LoadError = e.Err.Error()
		}
		h.dispatch(coordinator.CatalogFailed{Err: e.Err})

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}
