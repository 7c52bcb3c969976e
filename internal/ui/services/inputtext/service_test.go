package inputtext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"comboselect/internal/eventbus"
)

func TestSetAndClear(t *testing.T) {
	s := NewService(nil)
	assert.True(t, s.IsEmpty())

	assert.True(t, s.Set("ban"))
	assert.False(t, s.Set("ban"))
	assert.Equal(t, "ban", s.Value())

	assert.True(t, s.Clear())
	assert.False(t, s.Clear())
	assert.True(t, s.IsEmpty())
}

func TestInputChangedEvents(t *testing.T) {
	bus := eventbus.New()
	var texts []string
	bus.Subscribe(eventbus.EventInputChanged, func(e eventbus.DomainEvent) {
		texts = append(texts, e.(eventbus.InputChangedEvent).Text)
	})

	s := NewService(bus)
	s.Set("a")
	s.Set("a")
	s.Set("ap")
	s.Clear()

	assert.Equal(t, []string{"a", "ap", ""}, texts)
}
