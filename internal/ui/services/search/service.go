package search

import (
	"log"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"starseek/internal/domain"
	"starseek/internal/ui/logic"
	"starseek/internal/ui/services/events"
)

// Service owns the result buffer: the ordered catalog positions matching the
// last committed query. The buffer is regenerated wholesale on every commit.
type Service struct {
	state   *State
	bus     events.EventBus
	catalog *domain.Catalog

	// last query whose literal fallback was logged
	fallbackLogged string
}

// NewService creates a new search service over an empty catalog
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Matches: roaring.New(),
		},
		bus:     bus,
		catalog: domain.EmptyCatalog(),
	}
}

// SetCatalog replaces the catalog. The buffer is left as is until the next Recompute.
func (s *Service) SetCatalog(catalog *domain.Catalog) {
	if catalog == nil {
		catalog = domain.EmptyCatalog()
	}
	s.catalog = catalog
}

// Catalog returns the catalog being searched
func (s *Service) Catalog() *domain.Catalog {
	return s.catalog
}

// Recompute rebuilds the buffer for query with one full catalog scan.
// An empty query deactivates the buffer.
func (s *Service) Recompute(query string) {
	s.state.Query = query
	s.state.Matches = roaring.New()
	s.state.Literal = false

	if query == "" {
		s.state.Active = false
		s.bus.Publish(SearchClearedEvent{})
		return
	}
	s.state.Active = true

	pattern := logic.CompilePattern(query)
	if pattern.IsLiteral() {
		s.state.Literal = true
		if s.fallbackLogged != query {
			s.fallbackLogged = query
			log.Printf("Search pattern '%s' is not a valid expression, matching literally: %v", query, pattern.Err())
		}
	}

	n := min(s.catalog.Len(), math.MaxUint32)
	for i := 0; i < n; i++ {
		if pattern.Matches(s.catalog.At(i)) {
			s.state.Matches.Add(uint32(i))
		}
	}

	first := -1
	if !s.state.Matches.IsEmpty() {
		first = int(s.state.Matches.Minimum())
	}
	log.Printf("Search completed for '%s': found %d matches", query, s.Len())
	s.bus.Publish(SearchCompletedEvent{
		Query:      query,
		MatchCount: s.Len(),
		FirstMatch: first,
		Literal:    s.state.Literal,
	})
}

// IsActive reports whether a non-empty query is committed
func (s *Service) IsActive() bool {
	return s.state.Active
}

// Query returns the committed query the buffer was built for
func (s *Service) Query() string {
	return s.state.Query
}

// IsLiteral reports whether the committed query fell back to literal matching
func (s *Service) IsLiteral() bool {
	return s.state.Literal
}

// Len returns the total match count
func (s *Service) Len() int {
	return int(s.state.Matches.GetCardinality())
}

// At returns the i-th matching record, or nil when out of range
func (s *Service) At(i int) *domain.Record {
	if i < 0 || i >= s.Len() {
		return nil
	}
	pos, err := s.state.Matches.Select(uint32(i))
	if err != nil {
		return nil
	}
	return s.catalog.At(int(pos))
}

// Slice returns the records in window, clamped to the buffer
func (s *Service) Slice(window domain.VisibleWindow) []*domain.Record {
	start := max(window.Start, 0)
	end := min(window.End, s.Len())
	if start >= end {
		return nil
	}

	first, err := s.state.Matches.Select(uint32(start))
	if err != nil {
		return nil
	}

	out := make([]*domain.Record, 0, end-start)
	it := s.state.Matches.Iterator()
	it.AdvanceIfNeeded(first)
	for len(out) < end-start && it.HasNext() {
		out = append(out, s.catalog.At(int(it.Next())))
	}
	return out
}

// CatalogIndices returns the catalog positions of all matches in order
func (s *Service) CatalogIndices() []int {
	out := make([]int, 0, s.Len())
	it := s.state.Matches.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}
