package input

import (
	"starseek/internal/ui/coordinator"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Coordinator *coordinator.Coordinator
}

// ResultsShown returns true while the result surface is visible
func (c *ModelContext) ResultsShown() bool {
	return c.Coordinator.IsActive()
}

// CursorIndex returns the highlighted result index
func (c *ModelContext) CursorIndex() int {
	return c.Coordinator.Navigation.GetCursor()
}

// ResultCount returns the size of the committed result buffer
func (c *ModelContext) ResultCount() int {
	return c.Coordinator.Search.Len()
}

// Query returns the text in the query surface
func (c *ModelContext) Query() string {
	return c.Coordinator.Query.Raw()
}
