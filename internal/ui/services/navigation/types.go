package navigation

import "starseek/internal/domain"

// State holds all scroll-related state
type State struct {
	Scroll domain.ScrollState
	Cursor int                  // highlighted result index
	Window domain.VisibleWindow // last computed window
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// Event types for scroll changes
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

type ScrollChangedEvent struct {
	Offset int
	Window domain.VisibleWindow
}
