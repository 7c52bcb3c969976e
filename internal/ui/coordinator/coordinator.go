package coordinator

import (
	"log"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"comboselect/internal/domain"
	"comboselect/internal/eventbus"
	"comboselect/internal/ui/services/filter"
	"comboselect/internal/ui/services/hover"
	"comboselect/internal/ui/services/inputtext"
	"comboselect/internal/ui/services/navigation"
	"comboselect/internal/ui/services/openclose"
	"comboselect/internal/ui/services/selection"
)

var lastID atomic.Int64

// RecomputeMsg is delivered when a debounce window elapses. It only takes
// effect if Seq is still the latest request of coordinator ID.
type RecomputeMsg struct {
	ID  int64
	Seq uint64
}

// Coordinator wires the select services together and is the single entry
// point used by the rendering layer
type Coordinator[T comparable] struct {
	// Services
	Filter    *filter.Service[T]
	Hover     *hover.Service[T]
	Selection *selection.Service[T]
	Input     *inputtext.Service
	Menu      *openclose.Service
	Viewport  *navigation.Service

	id        int64
	options   []T
	known     map[T]struct{}
	label     domain.LabelFunc[T]
	disabled  bool
	autofocus bool
	bus       eventbus.EventBus
}

// New creates a coordinator from cfg with the visible list computed for
// empty input
func New[T comparable](cfg Config[T]) *Coordinator[T] {
	bus := cfg.Bus
	if bus == nil {
		bus = eventbus.Nop()
	}
	label := cfg.Label
	if label == nil {
		label = domain.LabelFor[T](cfg.LabelKey)
	}

	c := &Coordinator[T]{
		Filter:    filter.NewService[T](bus, label, cfg.Filter),
		Hover:     hover.NewService[T](bus),
		Input:     inputtext.NewService(bus),
		Menu:      openclose.NewService(bus),
		Viewport:  navigation.NewService(cfg.MenuHeight),
		id:        lastID.Add(1),
		label:     label,
		disabled:  cfg.Disabled,
		autofocus: cfg.Autofocus,
		bus:       bus,
	}

	if cfg.Value.Mode == selection.ModeMulti {
		c.Selection = selection.NewMulti[T](bus, cfg.Value.Values())
	} else {
		v, ok := cfg.Value.Single()
		c.Selection = selection.NewSingle[T](bus, v, ok)
	}

	// Wire up service dependencies
	c.wireServices()

	c.setOptions(cfg.Options)
	c.Filter.Reset("")

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator[T]) wireServices() {
	c.Filter.SetOptionsFunction(func() []T {
		return c.options
	})
	c.Filter.SetSelectedFunction(func(opt T) bool {
		return c.Selection.Contains(opt)
	})
	c.Hover.SetQueryFunction(func() []T {
		return c.Filter.Options()
	})
}

func (c *Coordinator[T]) setOptions(options []T) {
	c.options = make([]T, len(options))
	copy(c.options, options)
	c.known = make(map[T]struct{}, len(options))
	for _, opt := range options {
		c.known[opt] = struct{}{}
	}
}

// ID identifies this coordinator in RecomputeMsg
func (c *Coordinator[T]) ID() int64 {
	return c.id
}

// Options returns the full option set
func (c *Coordinator[T]) Options() []T {
	out := make([]T, len(c.options))
	copy(out, c.options)
	return out
}

// Label returns the display label of opt
func (c *Coordinator[T]) Label(opt T) string {
	return c.label(opt)
}

// Snapshot returns the state for rendering
func (c *Coordinator[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		IsOpen:         c.Menu.IsOpen(),
		InputValue:     c.Input.Value(),
		VisibleOptions: c.Filter.Visible(),
		Hovered:        c.Hover.State(),
		Selection:      c.Selection.Value(),
		Loading:        c.Filter.Loading(),
		Disabled:       c.disabled,
		Autofocus:      c.autofocus,
	}
}

// SelectedLabel returns the label of the committed selection. Multiple
// values are joined with ", ".
func (c *Coordinator[T]) SelectedLabel() string {
	values := c.Selection.Values()
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = c.label(v)
	}
	return strings.Join(labels, ", ")
}

// Clearable reports whether a clear control should be offered: something
// is selected and no text is typed
func (c *Coordinator[T]) Clearable() bool {
	return c.Selection.HasSelection() && c.Input.IsEmpty()
}

// Open focuses the widget and opens the menu
func (c *Coordinator[T]) Open() {
	if c.Menu.Focus() || c.Hover.Index() == hover.NoIndex {
		c.hoverSelectedOrFirst()
	}
}

// Blur closes the menu and drops the hover
func (c *Coordinator[T]) Blur() {
	c.Menu.Blur()
	c.Hover.Clear()
	c.Viewport.Reset()
}

// SetInputText stores typed text and schedules a debounced
// recomputation. The returned command delivers the RecomputeMsg.
func (c *Coordinator[T]) SetInputText(text string) tea.Cmd {
	if !c.Input.Set(text) {
		return nil
	}
	c.Menu.Type()

	req := c.Filter.Request(text)
	return c.schedule(req)
}

func (c *Coordinator[T]) schedule(req filter.Request) tea.Cmd {
	msg := RecomputeMsg{ID: c.id, Seq: req.Seq}
	if req.Delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(req.Delay, func(time.Time) tea.Msg {
		return msg
	})
}

// Settle applies a RecomputeMsg. Messages for other coordinators and
// superseded requests are ignored. Reports whether the visible list changed.
func (c *Coordinator[T]) Settle(msg RecomputeMsg) bool {
	if msg.ID != c.id {
		return false
	}
	if !c.Filter.Settle(msg.Seq) {
		return false
	}
	c.resyncHover()
	return true
}

// Update routes coordinator messages. Reports whether msg was one of ours
// and changed the visible list.
func (c *Coordinator[T]) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case RecomputeMsg:
		return c.Settle(msg)
	}
	return false
}

// HoverNext moves the hover down with wraparound
func (c *Coordinator[T]) HoverNext() {
	c.Hover.HoverNext()
	c.syncViewport()
}

// HoverPrev moves the hover up with wraparound
func (c *Coordinator[T]) HoverPrev() {
	c.Hover.HoverPrev()
	c.syncViewport()
}

// HoverIndex hovers the visible row at index
func (c *Coordinator[T]) HoverIndex(index int) {
	c.Hover.HoverIndex(index)
	c.syncViewport()
}

// Select commits opt. Options outside the configured set are ignored.
func (c *Coordinator[T]) Select(opt T) {
	if !c.isKnown(opt) {
		log.Printf("Ignoring select of unknown option %v", opt)
		return
	}

	c.Selection.Select(opt)

	if c.Selection.IsMulti() {
		c.Menu.Commit(true)
		c.Filter.Refresh()
		c.resyncHover()
		return
	}

	// The label now comes from the selection
	c.Input.Clear()
	c.Filter.Reset("")
	c.Menu.Commit(false)
	c.Hover.Clear()
	c.Viewport.Reset()
}

// Commit selects the hovered option. Reports whether one was hovered.
func (c *Coordinator[T]) Commit() bool {
	opt, ok := c.Hover.Hovered()
	if !ok {
		return false
	}
	c.Select(opt)
	return true
}

// Unselect removes opt from the selection. The menu state is unchanged.
func (c *Coordinator[T]) Unselect(opt T) {
	if !c.isKnown(opt) {
		return
	}
	if !c.Selection.Unselect(opt) {
		return
	}
	c.Filter.Refresh()
	c.resyncHover()
}

// UnselectLast removes the most recently selected value
func (c *Coordinator[T]) UnselectLast() {
	if _, ok := c.Selection.UnselectLast(); !ok {
		return
	}
	c.Filter.Refresh()
	c.resyncHover()
}

// Clear empties the selection and the typed text and closes the menu
func (c *Coordinator[T]) Clear() {
	c.Selection.Clear()
	c.Input.Clear()
	c.Filter.Reset("")
	c.Menu.ClearAction()
	c.Hover.Clear()
	c.Viewport.Reset()
}

// SetOptions replaces the full option set. Selected values that are no
// longer offered stay selected.
func (c *Coordinator[T]) SetOptions(options []T) {
	c.setOptions(options)
	c.Filter.Refresh()
	c.resyncHover()
}

// resyncHover points the hover at the new visible list
func (c *Coordinator[T]) resyncHover() {
	if c.Menu.IsOpen() {
		c.hoverSelectedOrFirst()
		return
	}
	c.Hover.Clear()
	c.syncViewport()
}

func (c *Coordinator[T]) hoverSelectedOrFirst() {
	single, ok := c.Selection.Single()
	c.Hover.HoverSelectedOrFirst(single, ok)
	c.syncViewport()
}

func (c *Coordinator[T]) syncViewport() {
	c.Viewport.EnsureVisible(c.Hover.Index(), len(c.Filter.Options()))
}

func (c *Coordinator[T]) isKnown(opt T) bool {
	_, ok := c.known[opt]
	return ok
}
