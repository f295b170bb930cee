package query

import "time"

// DefaultDelay is the quiet period before typed input is committed
const DefaultDelay = 200 * time.Millisecond

// State holds debouncer state
type State struct {
	Raw       string // text as last typed
	Committed string // trimmed text of the last commit
	LastID    uint64 // id of the most recent notification
	Pending   bool   // a commit for LastID is still owed
}

// Ticket asks the caller to deliver Elapsed(ID) after Delay
type Ticket struct {
	ID    uint64
	Delay time.Duration
}

// Event types
type QueryChangedEvent struct {
	Raw string
	ID  uint64
}

type QueryCommittedEvent struct {
	Query string
	ID    uint64
}

type QueryCancelledEvent struct {
	ID uint64
}
