package filter

import (
	"github.com/andareed/siftly-timeline/logging"
	"github.com/andareed/siftly-timeline/timeline"
)

// DefaultDisplayCap bounds how many matches are kept for display.
const DefaultDisplayCap = 5000

// Source is the read-only view of the store the engine needs.
type Source interface {
	Len() int
	At(i int) *timeline.Record
}

// VisibleSet is the ordered, display-capped list of matching store
// positions. Total counts every match before truncation.
type VisibleSet struct {
	Indices []int
	Total   int
}

func (v VisibleSet) Len() int { return len(v.Indices) }

// Truncated reports whether matches were dropped by the display cap.
func (v VisibleSet) Truncated() bool { return v.Total > len(v.Indices) }

// Recompute scans src in order and keeps the first displayCap records that
// match c. It has no side effects.
func Recompute(src Source, c Criteria, displayCap int) VisibleSet {
	if displayCap <= 0 {
		displayCap = DefaultDisplayCap
	}
	n := src.Len()
	vs := VisibleSet{Indices: make([]int, 0, min(n, displayCap))}
	for i := 0; i < n; i++ {
		if !c.Match(src.At(i)) {
			continue
		}
		vs.Total++
		if len(vs.Indices) < displayCap {
			vs.Indices = append(vs.Indices, i)
		}
	}
	return vs
}

// Engine owns the active criteria and caches the visible set, recomputing
// it only after the criteria change.
type Engine struct {
	src        Source
	displayCap int
	criteria   Criteria
	visible    VisibleSet
	dirty      bool
}

func NewEngine(src Source, displayCap int) *Engine {
	if displayCap <= 0 {
		displayCap = DefaultDisplayCap
	}
	return &Engine{src: src, displayCap: displayCap, dirty: true}
}

// Criteria returns a copy of the active criteria.
func (e *Engine) Criteria() Criteria { return e.criteria.Clone() }

func (e *Engine) DisplayCap() int { return e.displayCap }

// Apply replaces the active criteria.
func (e *Engine) Apply(c Criteria) {
	e.criteria = c.Clone()
	e.dirty = true
	logging.Debugf("filter: apply %q", e.criteria.Describe())
}

// Reset clears every predicate.
func (e *Engine) Reset() { e.Apply(Criteria{}) }

// Visible returns the visible set for the active criteria.
func (e *Engine) Visible() VisibleSet {
	if e.dirty {
		e.visible = Recompute(e.src, e.criteria, e.displayCap)
		e.dirty = false
		logging.Debugf("filter: %d matches, %d shown", e.visible.Total, e.visible.Len())
	}
	return e.visible
}
