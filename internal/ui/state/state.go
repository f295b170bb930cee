package state

import (
	"starseek/internal/domain"
)

// AppState contains everything the coordinator has told the UI to show
type AppState struct {
	// Result surface
	ResultsShown  bool             // result surface visible
	ResultCount   int              // size of the committed buffer
	ContentExtent int              // total height of all results
	Rows          []*domain.Record // materialized window
	WindowStart   int              // buffer index of Rows[0]

	// Catalog
	Loading     bool
	Sources     []string
	CatalogSize int
	LoadError   string

	// UI state
	StatusMessage string // transient status line message
}

// NewAppState creates the initial state, loading until the catalog arrives
func NewAppState(sources []string) *AppState {
	return &AppState{
		Loading: true,
		Sources: sources,
	}
}

// RowAt returns the materialized record for a buffer index, or nil
func (s *AppState) RowAt(index int) *domain.Record {
	i := index - s.WindowStart
	if i < 0 || i >= len(s.Rows) {
		return nil
	}
	return s.Rows[i]
}
