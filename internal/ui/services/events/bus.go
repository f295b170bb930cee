package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
	inline    bool
}

// NewBus creates a bus that runs each listener on its own goroutine
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// NewSyncBus creates a bus that runs listeners on the publisher's goroutine,
// in subscription order. Used by the single-threaded search engine so
// observers see notifications on the same turn that produced them.
func NewSyncBus() *Bus {
	b := NewBus()
	b.inline = true
	return b
}

// Subscribe registers a listener for an event type name such as "search.SearchCompletedEvent"
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[EventName(event)]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if b.inline {
			handler(event)
			continue
		}
		go handler(event)
	}
}

// EventName returns the name events are subscribed under: the qualified type name
func EventName(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
