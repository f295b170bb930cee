package coordinator

import (
	"starseek/internal/domain"
	"starseek/internal/ui/services/navigation"
)

// Event is an inbound coordinator event
type Event interface {
	isEvent()
}

// QueryInput is raw text from the query surface
type QueryInput struct {
	Raw string
}

// DebounceElapsed is a scheduled debounce timer firing
type DebounceElapsed struct {
	ID uint64
}

// Scroll reports the result surface's new scroll offset
type Scroll struct {
	Offset int
}

// ScrollBy moves the scroll offset relative to its current value
type ScrollBy struct {
	Delta int
}

// Navigate moves the highlight cursor
type Navigate struct {
	Direction navigation.Direction
}

// ResultClick selects the result at a buffer index
type ResultClick struct {
	Index int
}

// SelectCursor selects the highlighted result
type SelectCursor struct{}

// Dismiss closes the result surface without selecting
type Dismiss struct{}

// CatalogReady delivers the loaded catalog
type CatalogReady struct {
	Catalog *domain.Catalog
}

// CatalogFailed reports that the catalog could not be loaded
type CatalogFailed struct {
	Err error
}

// Resize changes the viewport height
type Resize struct {
	ViewportHeight int
}

func (QueryInput) isEvent()      {}
func (DebounceElapsed) isEvent() {}
func (Scroll) isEvent()          {}
func (ScrollBy) isEvent()        {}
func (Navigate) isEvent()        {}
func (ResultClick) isEvent()     {}
func (SelectCursor) isEvent()    {}
func (Dismiss) isEvent()         {}
func (CatalogReady) isEvent()    {}
func (CatalogFailed) isEvent()   {}
func (Resize) isEvent()          {}
