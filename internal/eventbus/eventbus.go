package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"comboselect/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventOptionSelected   = domain.EventOptionSelected
	EventOptionUnselected = domain.EventOptionUnselected
	EventSelectionCleared = domain.EventSelectionCleared
	EventMenuToggled      = domain.EventMenuToggled
	EventHoverChanged     = domain.EventHoverChanged
	EventInputChanged     = domain.EventInputChanged
	EventFilterRequested  = domain.EventFilterRequested
	EventFilterSettled    = domain.EventFilterSettled
	EventFilterDiscarded  = domain.EventFilterDiscarded
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type OptionSelectedEvent = domain.OptionSelectedEvent
type OptionUnselectedEvent = domain.OptionUnselectedEvent
type SelectionClearedEvent = domain.SelectionClearedEvent
type MenuToggledEvent = domain.MenuToggledEvent
type HoverChangedEvent = domain.HoverChangedEvent
type InputChangedEvent = domain.InputChangedEvent
type FilterRequestedEvent = domain.FilterRequestedEvent
type FilterSettledEvent = domain.FilterSettledEvent
type FilterDiscardedEvent = domain.FilterDiscardedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run on the publishing goroutine, in subscription order.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers of its type
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventHoverChanged, EventInputChanged:
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	// Copy so handlers may subscribe or unsubscribe while being called
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

// nopBus drops every event
type nopBus struct{}

// Nop returns a bus that discards all events
func Nop() EventBus { return nopBus{} }

func (nopBus) Publish(DomainEvent) {}

func (nopBus) Subscribe(EventType, EventHandler) func() { return func() {} }
