// Package session is the modal interaction state machine. Transition is a
// pure function from a state and a logical key to the next state and an
// optional committed filter change; Machine applies those changes to a
// filter engine.
package session

import (
	"github.com/andareed/siftly-timeline/timerange"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeActionFilter
	ModeTimePresets
	ModeCustomPick
	ModeCustomType
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "SEARCH"
	case ModeActionFilter:
		return "ACTION"
	case ModeTimePresets, ModeCustomPick, ModeCustomType:
		return "TIME"
	default:
		return "NORMAL"
	}
}

// State is one of Normal, Search, ActionFilter, TimePresets, CustomPick or
// CustomType. Each carries only what its mode needs.
type State interface {
	Mode() Mode
}

type Normal struct{}

// Search stages a query that is applied on confirm.
type Search struct {
	Text string
}

type ActionFilter struct {
	Cursor int
}

type TimePresets struct {
	Cursor int
}

type CustomPick struct {
	Picker timerange.Picker
	Cursor int
}

// CustomType stages a typed time expression. Err holds the last parse
// failure, if any.
type CustomType struct {
	Text string
	Err  string
}

func (Normal) Mode() Mode       { return ModeNormal }
func (Search) Mode() Mode       { return ModeSearch }
func (ActionFilter) Mode() Mode { return ModeActionFilter }
func (TimePresets) Mode() Mode  { return ModeTimePresets }
func (CustomPick) Mode() Mode   { return ModeCustomPick }
func (CustomType) Mode() Mode   { return ModeCustomType }

// Time menu entries after the presets.
const (
	customPickLabel = "Custom range (pick from data)"
	customTypeLabel = "Custom range (type expression)"
)

// TimeMenu lists the entries offered in TimePresets, in order.
func TimeMenu() []string {
	out := make([]string, 0, len(timerange.Presets)+2)
	for _, p := range timerange.Presets {
		out = append(out, p.String())
	}
	return append(out, customPickLabel, customTypeLabel)
}

func customPickIndex() int { return len(timerange.Presets) }
func customTypeIndex() int { return len(timerange.Presets) + 1 }
