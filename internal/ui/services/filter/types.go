package filter

import (
	"fmt"
	"strings"
	"time"
)

// Matcher names a matching policy for option labels
type Matcher string

const (
	// MatchSubstring keeps options whose label contains the text, ignoring case
	MatchSubstring Matcher = "substring"
	// MatchFuzzy keeps options whose label fuzzily matches the text, best first
	MatchFuzzy Matcher = "fuzzy"
)

// ParseMatcher converts a configuration string into a Matcher.
// An empty string selects MatchSubstring.
func ParseMatcher(s string) (Matcher, error) {
	switch Matcher(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchFuzzy:
		return MatchFuzzy, nil
	default:
		return "", fmt.Errorf("unknown matcher %q", s)
	}
}

// DefaultDebounce is the input debounce used when none is configured
const DefaultDebounce = 200 * time.Millisecond

// Settings configures a filter engine. It is fixed per widget.
type Settings struct {
	Debounce                    time.Duration
	ShouldFilterSelectedOptions bool
	Matcher                     Matcher
}

// DefaultSettings returns the settings of an unconfigured widget
func DefaultSettings() Settings {
	return Settings{
		Debounce:                    DefaultDebounce,
		ShouldFilterSelectedOptions: true,
		Matcher:                     MatchSubstring,
	}
}

// normalize clamps invalid settings to safe values
func (s Settings) normalize() Settings {
	if s.Debounce < 0 {
		s.Debounce = 0
	}
	if s.Matcher == "" {
		s.Matcher = MatchSubstring
	}
	return s
}

// Request is a queued recomputation. Only the request carrying the latest
// sequence number is ever applied.
type Request struct {
	Seq   uint64
	Text  string
	Delay time.Duration
}

// State holds the filter engine state
type State[T any] struct {
	Visible        []T    // current visible option list
	AppliedText    string // text the visible list was computed from
	PendingText    string // text of the outstanding request
	Pending        bool   // a request is outstanding
	Seq            uint64 // latest issued sequence number
	Recomputations int    // number of times Visible was recomputed
}
