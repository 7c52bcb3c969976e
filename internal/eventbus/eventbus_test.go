package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishInSubscriptionOrder(t *testing.T) {
	bus := New()
	var calls []string

	bus.Subscribe(EventMenuToggled, func(DomainEvent) { calls = append(calls, "first") })
	bus.Subscribe(EventMenuToggled, func(DomainEvent) { calls = append(calls, "second") })
	bus.Subscribe(EventHoverChanged, func(DomainEvent) { calls = append(calls, "other") })

	bus.Publish(MenuToggledEvent{Open: true, Trigger: "focus"})
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestUnsubscribe(t *testing.T) {
	bus := New()
	count := 0

	unsubscribe := bus.Subscribe(EventInputChanged, func(DomainEvent) { count++ })
	bus.Publish(InputChangedEvent{Text: "a"})

	unsubscribe()
	unsubscribe() // second call is a no-op
	bus.Publish(InputChangedEvent{Text: "ab"})

	assert.Equal(t, 1, count)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	bus := New()
	reached := false

	bus.Subscribe(EventSelectionCleared, func(DomainEvent) { panic("boom") })
	bus.Subscribe(EventSelectionCleared, func(DomainEvent) { reached = true })

	assert.NotPanics(t, func() {
		bus.Publish(SelectionClearedEvent{Removed: 2})
	})
	assert.True(t, reached)
}

func TestSubscribeDuringPublish(t *testing.T) {
	bus := New()
	late := 0

	bus.Subscribe(EventConfigLoaded, func(DomainEvent) {
		bus.Subscribe(EventConfigLoaded, func(DomainEvent) { late++ })
	})

	bus.Publish(ConfigLoadedEvent{Path: "a"})
	assert.Equal(t, 0, late, "handlers added while publishing wait for the next event")

	bus.Publish(ConfigLoadedEvent{Path: "b"})
	assert.Equal(t, 1, late)
}

func TestNopBus(t *testing.T) {
	bus := Nop()
	called := false
	bus.Subscribe(EventConfigSaved, func(DomainEvent) { called = true })()
	bus.Publish(ConfigSavedEvent{Path: "x"})
	assert.False(t, called)
}
