// Package filter combines search terms, an action type and a time interval
// into the visible subset of a timeline.
package filter

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-timeline/timeline"
	"github.com/andareed/siftly-timeline/timerange"
)

// Criteria is the active filter. It is replaced as a whole on every commit,
// never edited in place. The zero value matches everything.
type Criteria struct {
	Terms      []string // lowercase, ANDed
	ActionType string   // exact match; empty means any
	Time       *timerange.Interval
}

// ParseTerms lowercases text and splits it on whitespace, dropping repeats.
func ParseTerms(text string) []string {
	var terms []string
	seen := make(map[string]bool)
	for _, f := range strings.Fields(strings.ToLower(text)) {
		if seen[f] {
			continue
		}
		seen[f] = true
		terms = append(terms, f)
	}
	return terms
}

func (c Criteria) IsZero() bool {
	return len(c.Terms) == 0 && c.ActionType == "" && c.Time == nil
}

// SearchText is the terms joined back into one line.
func (c Criteria) SearchText() string {
	return strings.Join(c.Terms, " ")
}

// Clone returns a copy that shares nothing mutable with c.
func (c Criteria) Clone() Criteria {
	out := Criteria{ActionType: c.ActionType}
	if len(c.Terms) > 0 {
		out.Terms = append([]string(nil), c.Terms...)
	}
	if c.Time != nil {
		iv := *c.Time
		out.Time = &iv
	}
	return out
}

// Match reports whether r passes every active predicate.
func (c Criteria) Match(r *timeline.Record) bool {
	if c.ActionType != "" && r.ActionType() != c.ActionType {
		return false
	}
	if c.Time != nil && !c.Time.Contains(r.Time) {
		return false
	}
	for _, term := range c.Terms {
		if !r.Matches(term) {
			return false
		}
	}
	return true
}

// Describe renders the active predicates for status lines, or "" when none
// are set.
func (c Criteria) Describe() string {
	var parts []string
	if len(c.Terms) > 0 {
		parts = append(parts, fmt.Sprintf("search:%q", c.SearchText()))
	}
	if c.ActionType != "" {
		parts = append(parts, "action:"+c.ActionType)
	}
	if c.Time != nil {
		parts = append(parts, "time:"+c.Time.String())
	}
	return strings.Join(parts, " · ")
}
