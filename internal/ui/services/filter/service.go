package filter

import (
	"log"
	"strings"

	"github.com/sahilm/fuzzy"

	"comboselect/internal/domain"
	"comboselect/internal/eventbus"
)

// Service derives the visible option list from the full option set,
// the typed text and the current selection
type Service[T comparable] struct {
	state      *State[T]
	settings   Settings
	label      domain.LabelFunc[T]
	bus        eventbus.EventBus
	optionsFn  func() []T   // Function to get the full option set
	selectedFn func(T) bool // Function to test whether an option is selected
}

// NewService creates a new filter engine
func NewService[T comparable](bus eventbus.EventBus, label domain.LabelFunc[T], settings Settings) *Service[T] {
	if bus == nil {
		bus = eventbus.Nop()
	}
	if label == nil {
		label = domain.LabelFor[T](domain.DefaultLabelKey)
	}
	return &Service[T]{
		state:    &State[T]{},
		settings: settings.normalize(),
		label:    label,
		bus:      bus,
	}
}

// SetOptionsFunction sets the function returning the full option set
func (s *Service[T]) SetOptionsFunction(fn func() []T) {
	s.optionsFn = fn
}

// SetSelectedFunction sets the function reporting whether an option is selected
func (s *Service[T]) SetSelectedFunction(fn func(T) bool) {
	s.selectedFn = fn
}

// Settings returns the normalized engine settings
func (s *Service[T]) Settings() Settings {
	return s.settings
}

// Request queues a debounced recomputation for text. Any outstanding
// request is superseded and will be discarded when it fires.
func (s *Service[T]) Request(text string) Request {
	s.state.Seq++
	s.state.PendingText = text
	s.state.Pending = true

	s.bus.Publish(eventbus.FilterRequestedEvent{Seq: s.state.Seq, Text: text})

	return Request{
		Seq:   s.state.Seq,
		Text:  text,
		Delay: s.settings.Debounce,
	}
}

// Settle applies the request tagged seq if it is still the latest one.
// It returns false when the request was superseded, in which case the
// visible list is left untouched.
func (s *Service[T]) Settle(seq uint64) bool {
	if !s.state.Pending || seq != s.state.Seq {
		log.Printf("Filter request %d discarded (latest %d)", seq, s.state.Seq)
		s.bus.Publish(eventbus.FilterDiscardedEvent{Seq: seq, Latest: s.state.Seq})
		return false
	}

	s.state.Pending = false
	s.recompute(s.state.PendingText)

	s.bus.Publish(eventbus.FilterSettledEvent{
		Seq:     seq,
		Text:    s.state.AppliedText,
		Visible: len(s.state.Visible),
	})
	return true
}

// Refresh recomputes the visible list from the applied text immediately.
// An outstanding request is left in place.
func (s *Service[T]) Refresh() {
	s.recompute(s.state.AppliedText)
}

// Reset cancels any outstanding request and applies text immediately
func (s *Service[T]) Reset(text string) {
	if s.state.Pending {
		s.state.Seq++ // invalidate the in-flight tick
		s.state.Pending = false
	}
	s.state.PendingText = ""
	s.recompute(text)
}

// Visible returns a copy of the visible option list
func (s *Service[T]) Visible() []T {
	out := make([]T, len(s.state.Visible))
	copy(out, s.state.Visible)
	return out
}

// Options returns the live visible list; callers must not modify it
func (s *Service[T]) Options() []T {
	return s.state.Visible
}

// Loading reports whether a debounced recomputation is outstanding
func (s *Service[T]) Loading() bool {
	return s.state.Pending
}

// Text returns the text the visible list was computed from
func (s *Service[T]) Text() string {
	return s.state.AppliedText
}

// Seq returns the latest issued sequence number
func (s *Service[T]) Seq() uint64 {
	return s.state.Seq
}

// Recomputations returns how many times the visible list was recomputed
func (s *Service[T]) Recomputations() int {
	return s.state.Recomputations
}

func (s *Service[T]) recompute(text string) {
	var all []T
	if s.optionsFn != nil {
		all = s.optionsFn()
	}

	var exclude func(T) bool
	if s.settings.ShouldFilterSelectedOptions {
		exclude = s.selectedFn
	}

	s.state.Visible = Filter(all, text, s.label, exclude, s.settings.Matcher)
	s.state.AppliedText = text
	s.state.Recomputations++
}

// Filter returns the options of all whose label matches text under the
// given matcher, skipping those for which exclude returns true.
// Empty text matches every option, in original order.
func Filter[T comparable](all []T, text string, label domain.LabelFunc[T], exclude func(T) bool, matcher Matcher) []T {
	candidates := make([]T, 0, len(all))
	for _, opt := range all {
		if exclude != nil && exclude(opt) {
			continue
		}
		candidates = append(candidates, opt)
	}

	if text == "" {
		return candidates
	}

	if matcher == MatchFuzzy {
		return fuzzyFilter(candidates, text, label)
	}

	query := strings.ToLower(text)
	visible := make([]T, 0, len(candidates))
	for _, opt := range candidates {
		if strings.Contains(strings.ToLower(label(opt)), query) {
			visible = append(visible, opt)
		}
	}
	return visible
}

func fuzzyFilter[T comparable](candidates []T, text string, label domain.LabelFunc[T]) []T {
	labels := make([]string, len(candidates))
	for i, opt := range candidates {
		labels[i] = label(opt)
	}

	matches := fuzzy.Find(text, labels)
	visible := make([]T, 0, len(matches))
	for _, match := range matches {
		visible = append(visible, candidates[match.Index])
	}
	return visible
}
