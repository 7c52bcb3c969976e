package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comboselect/internal/domain"
	"comboselect/internal/eventbus"
	"comboselect/internal/ui/services/filter"
)

var fruits = []string{"Apple", "Banana", "Cherry"}

func newFruitCoordinator(value func(*Config[string])) *Coordinator[string] {
	cfg := NewConfig(fruits)
	cfg.LabelKey = domain.SelfLabel
	cfg.Filter.Debounce = 0
	if value != nil {
		value(&cfg)
	}
	return New(cfg)
}

// typeText sets the input and delivers the resulting recompute message
func typeText(t *testing.T, c *Coordinator[string], text string) {
	t.Helper()
	cmd := c.SetInputText(text)
	require.NotNil(t, cmd)
	msg, ok := cmd().(RecomputeMsg)
	require.True(t, ok)
	require.True(t, c.Update(msg))
}

func hovered(t *testing.T, c *Coordinator[string]) string {
	t.Helper()
	opt, ok := c.Hover.Hovered()
	require.True(t, ok, "expected a hovered option")
	return opt
}

func TestInitialState(t *testing.T) {
	c := newFruitCoordinator(nil)
	snap := c.Snapshot()

	assert.False(t, snap.IsOpen)
	assert.Equal(t, "", snap.InputValue)
	assert.Equal(t, fruits, snap.VisibleOptions)
	assert.False(t, snap.Hovered.Present)
	assert.True(t, snap.Selection.IsEmpty())
	assert.False(t, snap.Loading)
}

func TestTypeFilterAndCommitSingle(t *testing.T) {
	c := newFruitCoordinator(nil)

	c.Open()
	assert.True(t, c.Menu.IsOpen())
	assert.Equal(t, "Apple", hovered(t, c))

	typeText(t, c, "an")
	assert.Equal(t, []string{"Banana"}, c.Filter.Visible())
	assert.Equal(t, "Banana", hovered(t, c))

	require.True(t, c.Commit())

	v, ok := c.Selection.Single()
	require.True(t, ok)
	assert.Equal(t, "Banana", v)
	assert.False(t, c.Menu.IsOpen())
	assert.True(t, c.Input.IsEmpty())
	assert.Equal(t, []string{"Apple", "Cherry"}, c.Filter.Visible(), "selected option is filtered out")
	assert.Equal(t, "Banana", c.SelectedLabel())
}

func TestHoverDownThenCommit(t *testing.T) {
	c := newFruitCoordinator(nil)
	c.Open()

	c.HoverNext()
	assert.Equal(t, "Banana", hovered(t, c))

	require.True(t, c.Commit())
	v, _ := c.Selection.Single()
	assert.Equal(t, "Banana", v)
	assert.False(t, c.Menu.IsOpen())
}

func TestReopenHoversSelected(t *testing.T) {
	c := newFruitCoordinator(func(cfg *Config[string]) {
		cfg.Value = Single("Cherry")
		cfg.Filter.ShouldFilterSelectedOptions = false
	})

	c.Open()
	assert.Equal(t, "Cherry", hovered(t, c))
	assert.Equal(t, 2, c.Hover.Index())
}

func TestTypingOpensClosedMenu(t *testing.T) {
	c := newFruitCoordinator(nil)
	require.False(t, c.Menu.IsOpen())

	typeText(t, c, "ch")
	assert.True(t, c.Menu.IsOpen())
	assert.Equal(t, "Cherry", hovered(t, c))
}

func TestMultiExcludesSelectedAndStaysOpen(t *testing.T) {
	c := newFruitCoordinator(func(cfg *Config[string]) {
		cfg.Value = Multi("Apple")
	})
	assert.Equal(t, []string{"Banana", "Cherry"}, c.Filter.Visible())

	c.Open()
	assert.Equal(t, "Banana", hovered(t, c))

	require.True(t, c.Commit())
	assert.True(t, c.Menu.IsOpen())
	assert.Equal(t, []string{"Apple", "Banana"}, c.Selection.Values())
	assert.Equal(t, []string{"Cherry"}, c.Filter.Visible())
	assert.Equal(t, "Cherry", hovered(t, c))
	assert.Equal(t, "Apple, Banana", c.SelectedLabel())

	c.UnselectLast()
	assert.Equal(t, []string{"Apple"}, c.Selection.Values())
	assert.Equal(t, []string{"Banana", "Cherry"}, c.Filter.Visible())
}

func TestMultiKeepsSelectedWhenNotFiltering(t *testing.T) {
	c := newFruitCoordinator(func(cfg *Config[string]) {
		cfg.Value = Multi("Apple")
		cfg.Filter.ShouldFilterSelectedOptions = false
	})

	assert.Equal(t, fruits, c.Filter.Visible())
	assert.True(t, c.Snapshot().IsSelected("Apple"))
}

func TestBlurClearsHover(t *testing.T) {
	c := newFruitCoordinator(nil)
	c.Open()
	c.HoverNext()

	c.Blur()
	assert.False(t, c.Menu.IsOpen())
	_, ok := c.Hover.Hovered()
	assert.False(t, ok)
	assert.False(t, c.Commit(), "nothing to commit without a hover")
}

func TestSelectUnknownOptionIsNoOp(t *testing.T) {
	c := newFruitCoordinator(nil)
	c.Open()

	c.Select("Durian")
	assert.False(t, c.Selection.HasSelection())
	assert.True(t, c.Menu.IsOpen())

	c.Unselect("Durian")
	assert.False(t, c.Selection.HasSelection())
}

func TestClear(t *testing.T) {
	c := newFruitCoordinator(func(cfg *Config[string]) {
		cfg.Value = Multi("Apple", "Cherry")
	})
	c.Open()
	assert.True(t, c.Clearable())

	c.Clear()
	assert.False(t, c.Selection.HasSelection())
	assert.False(t, c.Menu.IsOpen())
	assert.True(t, c.Input.IsEmpty())
	assert.Equal(t, fruits, c.Filter.Visible())
	assert.False(t, c.Clearable())
}

func TestClearableNeedsEmptyInput(t *testing.T) {
	c := newFruitCoordinator(func(cfg *Config[string]) {
		cfg.Value = Single("Apple")
	})
	assert.True(t, c.Clearable())

	c.SetInputText("b")
	assert.False(t, c.Clearable())
}

func TestDebounceAppliesOnlyLatest(t *testing.T) {
	c := newFruitCoordinator(func(cfg *Config[string]) {
		cfg.Filter = filter.DefaultSettings()
	})
	before := c.Filter.Recomputations()

	require.NotNil(t, c.SetInputText("c"))
	first := RecomputeMsg{ID: c.ID(), Seq: c.Filter.Seq()}
	require.NotNil(t, c.SetInputText("ch"))
	require.NotNil(t, c.SetInputText("che"))
	latest := RecomputeMsg{ID: c.ID(), Seq: c.Filter.Seq()}

	assert.True(t, c.Snapshot().Loading)
	assert.False(t, c.Update(first))
	assert.Equal(t, fruits, c.Filter.Visible(), "stale request leaves the list alone")

	assert.True(t, c.Update(latest))
	assert.False(t, c.Snapshot().Loading)
	assert.Equal(t, []string{"Cherry"}, c.Filter.Visible())
	assert.Equal(t, 1, c.Filter.Recomputations()-before)
}

func TestRecomputeForOtherCoordinatorIgnored(t *testing.T) {
	a := newFruitCoordinator(func(cfg *Config[string]) {
		cfg.Filter = filter.DefaultSettings()
	})
	b := newFruitCoordinator(nil)
	require.NotEqual(t, a.ID(), b.ID())

	a.SetInputText("ban")
	msg := RecomputeMsg{ID: b.ID(), Seq: a.Filter.Seq()}
	assert.False(t, a.Update(msg))
	assert.True(t, a.Snapshot().Loading)

	assert.False(t, a.Update("not a recompute message"))
}

func TestSetInputTextUnchangedReturnsNil(t *testing.T) {
	c := newFruitCoordinator(nil)
	assert.Nil(t, c.SetInputText(""))
}

func TestSetOptionsKeepsSelection(t *testing.T) {
	c := newFruitCoordinator(func(cfg *Config[string]) {
		cfg.Value = Single("Apple")
	})
	c.Open()

	c.SetOptions([]string{"Kiwi", "Mango"})
	assert.Equal(t, []string{"Kiwi", "Mango"}, c.Filter.Visible())
	assert.Equal(t, "Kiwi", hovered(t, c))
	assert.True(t, c.Selection.Contains("Apple"))
}

func TestViewportFollowsHover(t *testing.T) {
	options := []string{"a", "b", "c", "d", "e"}
	cfg := NewConfig(options)
	cfg.LabelKey = domain.SelfLabel
	cfg.MenuHeight = 2
	c := New(cfg)

	c.Open()
	c.HoverPrev()
	assert.Equal(t, 4, c.Hover.Index())
	assert.Equal(t, 3, c.Viewport.Offset())

	c.HoverNext()
	assert.Equal(t, 0, c.Viewport.Offset())
}

func TestEventsPublished(t *testing.T) {
	bus := eventbus.New()
	var types []eventbus.EventType
	for _, et := range []eventbus.EventType{
		eventbus.EventMenuToggled,
		eventbus.EventOptionSelected,
	} {
		bus.Subscribe(et, func(e eventbus.DomainEvent) { types = append(types, e.Type()) })
	}

	c := newFruitCoordinator(func(cfg *Config[string]) { cfg.Bus = bus })
	c.Open()
	c.Commit()

	assert.Equal(t, []eventbus.EventType{
		eventbus.EventMenuToggled,
		eventbus.EventOptionSelected,
		eventbus.EventMenuToggled,
	}, types)
}

func TestStructOptionsUseLabelKey(t *testing.T) {
	opts := []*domain.Option{
		{ID: "1", Label: "Apple", Value: "apple"},
		{ID: "2", Label: "Banana", Value: "banana"},
	}
	cfg := NewConfig(opts)
	cfg.Filter.Debounce = 0
	c := New(cfg)

	cmd := c.SetInputText("nan")
	require.NotNil(t, cmd)
	c.Update(cmd())

	require.Len(t, c.Filter.Visible(), 1)
	assert.Equal(t, "Banana", c.Label(c.Filter.Visible()[0]))
}
