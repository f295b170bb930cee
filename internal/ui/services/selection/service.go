package selection

import (
	"log"

	"starseek/internal/domain"
	"starseek/internal/ui/services/events"
)

// Service resolves a clicked result to its record
type Service struct {
	state    *State
	bus      events.EventBus
	lookupFn func(int) *domain.Record // buffer index to record
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{SelectedIndex: -1},
		bus:   bus,
	}
}

// SetLookupFunction sets the function resolving a buffer index
func (s *Service) SetLookupFunction(fn func(int) *domain.Record) {
	s.lookupFn = fn
}

// Select resolves the result at index. It returns false for indices outside the buffer.
func (s *Service) Select(index int) (*domain.Record, bool) {
	if s.lookupFn == nil {
		return nil, false
	}
	record := s.lookupFn(index)
	if record == nil {
		log.Printf("Ignoring selection of result %d: out of range", index)
		return nil, false
	}

	s.state.Selected = record
	s.state.SelectedIndex = index
	s.bus.Publish(ResultSelectedEvent{
		Index:  index,
		Record: record,
		Name:   record.DisplayName(),
	})
	return record, true
}

// Dismiss records that the result surface was closed without a selection
func (s *Service) Dismiss() {
	s.bus.Publish(ResultsDismissedEvent{})
}

// GetSelected returns the last selected record
func (s *Service) GetSelected() *domain.Record {
	return s.state.Selected
}

// GetSelectedIndex returns the buffer index of the last selection
func (s *Service) GetSelectedIndex() int {
	return s.state.SelectedIndex
}
