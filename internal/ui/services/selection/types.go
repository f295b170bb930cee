package selection

import "starseek/internal/domain"

// State holds selection state
type State struct {
	Selected      *domain.Record // last selected record, if any
	SelectedIndex int            // buffer index of the last selection (-1 if none)
}

// Event types
type ResultSelectedEvent struct {
	Index  int
	Record *domain.Record
	Name   string
}

type ResultsDismissedEvent struct{}
