package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoadStarted EventType = "CatalogLoadStarted"
	EventSourceLoaded       EventType = "SourceLoaded"
	EventCatalogLoaded      EventType = "CatalogLoaded"
	EventCatalogLoadFailed  EventType = "CatalogLoadFailed"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadStartedEvent is emitted when the loader begins fetching sources
type CatalogLoadStartedEvent struct {
	Sources []string
}

func (e CatalogLoadStartedEvent) Type() EventType { return EventCatalogLoadStarted }

// SourceLoadedEvent is emitted after a single catalog source has been decoded
type SourceLoadedEvent struct {
	Source  string
	Records int
	Skipped int // entries with neither a name nor a key
}

func (e SourceLoadedEvent) Type() EventType { return EventSourceLoaded }

// CatalogLoadedEvent is emitted once the full catalog is resident in memory
type CatalogLoadedEvent struct {
	Catalog *Catalog
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogLoadFailedEvent is emitted when the catalog could not be loaded.
// Consumers treat the catalog as empty.
type CatalogLoadFailedEvent struct {
	Err error
}

func (e CatalogLoadFailedEvent) Type() EventType { return EventCatalogLoadFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Sources []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
