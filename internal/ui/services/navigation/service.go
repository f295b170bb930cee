package navigation

import (
	"starseek/internal/domain"
	"starseek/internal/ui/logic"
	"starseek/internal/ui/services/events"
)

// Service owns the scroll offset and highlight cursor, and recomputes the
// visible window from them on every change.
type Service struct {
	state   *State
	bus     events.EventBus
	layout  logic.Layout
	totalFn func() int // result count of the committed buffer
}

// NewService creates a new navigation service
func NewService(bus events.EventBus, layout logic.Layout) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state:  &State{},
		bus:    bus,
		layout: layout,
	}
}

// SetTotalFunction sets the function returning the number of results
func (s *Service) SetTotalFunction(fn func() int) {
	s.totalFn = fn
}

// SetLayout replaces the layout constants and recomputes the window
func (s *Service) SetLayout(layout logic.Layout) domain.VisibleWindow {
	s.layout = layout
	return s.Scroll(s.state.Scroll.Offset)
}

// Layout returns the layout constants
func (s *Service) Layout() logic.Layout {
	return s.layout
}

// GetOffset returns the last scroll offset
func (s *Service) GetOffset() int {
	return s.state.Scroll.Offset
}

// GetCursor returns the highlighted result index
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetWindow returns the last computed window
func (s *Service) GetWindow() domain.VisibleWindow {
	return s.state.Window
}

// ContentExtent returns the height of all results
func (s *Service) ContentExtent() int {
	return s.layout.ContentExtent(s.total())
}

// Scroll overwrites the offset, clamped to the content, and recomputes the window.
// The cursor is pulled into view.
func (s *Service) Scroll(offset int) domain.VisibleWindow {
	total := s.total()
	s.setOffset(s.layout.ClampOffset(offset, total))

	if total > 0 {
		first, last := s.fullyVisibleRows(total)
		s.moveCursor(min(max(s.state.Cursor, first), last))
	}
	return s.Refresh()
}

// ScrollBy moves the offset by delta
func (s *Service) ScrollBy(delta int) domain.VisibleWindow {
	return s.Scroll(s.state.Scroll.Offset + delta)
}

// Navigate moves the cursor in a direction and scrolls it into view
func (s *Service) Navigate(direction Direction) domain.VisibleWindow {
	total := s.total()
	if total == 0 {
		return s.Refresh()
	}

	page := max(s.layout.ViewportHeight/max(s.layout.ItemHeight, 1), 1)
	cursor := s.state.Cursor
	switch direction {
	case DirectionUp:
		cursor--
	case DirectionDown:
		cursor++
	case DirectionPageUp:
		cursor -= page
	case DirectionPageDown:
		cursor += page
	case DirectionHome:
		cursor = 0
	case DirectionEnd:
		cursor = total - 1
	}
	s.moveCursor(min(max(cursor, 0), total-1))
	s.ensureVisible(total)

	return s.Refresh()
}

// MoveToIndex moves the cursor to a result index and scrolls it into view
func (s *Service) MoveToIndex(index int) domain.VisibleWindow {
	total := s.total()
	if total == 0 {
		return s.Refresh()
	}
	s.moveCursor(min(max(index, 0), total-1))
	s.ensureVisible(total)
	return s.Refresh()
}

// Reset returns to the top of the results
func (s *Service) Reset() domain.VisibleWindow {
	s.moveCursor(0)
	s.setOffset(0)
	return s.Refresh()
}

// Refresh recomputes the window from the stored offset without changing it
func (s *Service) Refresh() domain.VisibleWindow {
	total := s.total()
	s.state.Window = s.layout.Window(s.state.Scroll.Offset, total)
	if s.state.Cursor >= total {
		s.moveCursor(max(total-1, 0))
	}
	return s.state.Window
}

func (s *Service) total() int {
	if s.totalFn == nil {
		return 0
	}
	return max(s.totalFn(), 0)
}

func (s *Service) setOffset(offset int) {
	if offset == s.state.Scroll.Offset {
		return
	}
	s.state.Scroll.Offset = offset
	s.bus.Publish(ScrollChangedEvent{
		Offset: offset,
		Window: s.layout.Window(offset, s.total()),
	})
}

func (s *Service) moveCursor(index int) {
	if index == s.state.Cursor {
		return
	}
	old := s.state.Cursor
	s.state.Cursor = index
	s.bus.Publish(CursorMovedEvent{OldIndex: old, NewIndex: index})
}

// fullyVisibleRows returns the first and last rows inside the viewport
func (s *Service) fullyVisibleRows(total int) (int, int) {
	item := max(s.layout.ItemHeight, 1)
	offset := s.state.Scroll.Offset
	first := (offset + item - 1) / item
	last := (offset+max(s.layout.ViewportHeight, 0))/item - 1
	last = min(max(last, first), total-1)
	return min(first, total-1), last
}

func (s *Service) ensureVisible(total int) {
	item := max(s.layout.ItemHeight, 1)
	top := s.state.Cursor * item
	offset := s.state.Scroll.Offset

	if top < offset {
		offset = top
	} else if bottom := top + item; bottom > offset+s.layout.ViewportHeight {
		offset = bottom - s.layout.ViewportHeight
	}
	s.setOffset(s.layout.ClampOffset(offset, total))
}
