package domain

// Record is a single searchable catalog entry
type Record struct {
	PrimaryName  string         // e.g. planet name
	SecondaryKey string         // e.g. host star
	Fields       map[string]any // passthrough fields from the source document
}

// DisplayName returns the name shown in the result list and copied into the query on selection
func (r *Record) DisplayName() string {
	if r == nil {
		return ""
	}
	if r.PrimaryName != "" {
		return r.PrimaryName
	}
	return r.SecondaryKey
}

// Catalog is the ordered, read-only set of searchable records.
// A record's identity is its zero-based position.
type Catalog struct {
	records []Record
}

// NewCatalog creates a catalog that owns the given records
func NewCatalog(records []Record) *Catalog {
	return &Catalog{records: records}
}

// EmptyCatalog returns a catalog with no records
func EmptyCatalog() *Catalog {
	return &Catalog{}
}

// Len returns the number of records
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// At returns the record at position i, or nil when out of range
func (c *Catalog) At(i int) *Record {
	if c == nil || i < 0 || i >= len(c.records) {
		return nil
	}
	return &c.records[i]
}

// ScrollState holds the last known scroll offset in layout units
type ScrollState struct {
	Offset int
}

// VisibleWindow is a half-open index range [Start, End) into the result buffer
type VisibleWindow struct {
	Start int
	End   int
}

// Len returns the number of indices in the window
func (w VisibleWindow) Len() int {
	return w.End - w.Start
}

// LoadProgress describes the catalog loading state
type LoadProgress struct {
	IsLoading bool
	Sources   []string
	Records   int
	Err       error
}
