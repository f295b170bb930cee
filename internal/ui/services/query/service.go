package query

import (
	"strings"
	"time"

	"starseek/internal/ui/services/events"
)

// Service debounces query input. Every notification supersedes the previous
// one; only the firing for the latest request id commits, and only once.
type Service struct {
	state *State
	bus   events.EventBus
	delay time.Duration
}

// NewService creates a new query service. A non-positive delay uses DefaultDelay.
func NewService(bus events.EventBus, delay time.Duration) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Service{
		state: &State{},
		bus:   bus,
		delay: delay,
	}
}

// Notify records new raw input and returns the timer the caller must schedule
func (s *Service) Notify(raw string) Ticket {
	s.state.LastID++
	s.state.Raw = raw
	s.state.Pending = true

	s.bus.Publish(QueryChangedEvent{Raw: raw, ID: s.state.LastID})

	return Ticket{ID: s.state.LastID, Delay: s.delay}
}

// Elapsed reports a timer firing. It returns the trimmed query and true when
// id is the latest notification and it has not been committed yet.
func (s *Service) Elapsed(id uint64) (string, bool) {
	if !s.state.Pending || id != s.state.LastID {
		return "", false
	}

	s.state.Pending = false
	s.state.Committed = strings.TrimSpace(s.state.Raw)
	s.bus.Publish(QueryCommittedEvent{Query: s.state.Committed, ID: id})

	return s.state.Committed, true
}

// Set replaces the raw text without committing it and drops any pending commit
func (s *Service) Set(text string) {
	s.Cancel()
	s.state.Raw = text
}

// Cancel drops the pending commit, if any. Timers already scheduled become stale.
func (s *Service) Cancel() {
	if !s.state.Pending {
		return
	}
	s.state.Pending = false
	s.state.LastID++
	s.bus.Publish(QueryCancelledEvent{ID: s.state.LastID})
}

// Raw returns the text as last typed or set
func (s *Service) Raw() string {
	return s.state.Raw
}

// Committed returns the last committed query
func (s *Service) Committed() string {
	return s.state.Committed
}

// IsPending reports whether a commit is owed
func (s *Service) IsPending() bool {
	return s.state.Pending
}

// LastID returns the most recent request id
func (s *Service) LastID() uint64 {
	return s.state.LastID
}

// Delay returns the quiet period
func (s *Service) Delay() time.Duration {
	return s.delay
}
