package session

import (
	"fmt"

	"github.com/andareed/siftly-timeline/filter"
	"github.com/andareed/siftly-timeline/logging"
	"github.com/andareed/siftly-timeline/timeline"
	"github.com/andareed/siftly-timeline/timerange"
)

// Machine holds the current state and applies committed effects to the
// filter engine. It is driven from a single goroutine.
type Machine struct {
	engine   *filter.Engine
	indexes  timeline.Indexes
	resolver *timerange.Resolver
	state    State
	notice   string
}

func NewMachine(engine *filter.Engine, indexes timeline.Indexes, resolver *timerange.Resolver) *Machine {
	return &Machine{
		engine:   engine,
		indexes:  indexes,
		resolver: resolver,
		state:    Normal{},
	}
}

func (m *Machine) env() Env {
	return Env{
		ActionTypes: m.indexes.ActionTypes,
		Index:       m.indexes.Time,
		Resolver:    m.resolver,
		Criteria:    m.engine.Criteria(),
	}
}

// Handle feeds one key through Transition and applies the result. Commit
// notices get the resulting event count appended.
func (m *Machine) Handle(key Key) Effect {
	from := m.state.Mode()
	next, eff := Transition(m.env(), m.state, key)
	m.state = next

	if eff.Criteria != nil {
		m.engine.Apply(*eff.Criteria)
		total := m.engine.Visible().Total
		eff.Notice = fmt.Sprintf("%s (%d events)", eff.Notice, total)
		logging.Infof("session: %s committed %q, %d events", from, eff.Criteria.Describe(), total)
	}
	if eff.Notice != "" {
		m.notice = eff.Notice
	}
	if from != next.Mode() {
		logging.Debugf("session: %s -> %s on %s", from, next.Mode(), key)
	}
	return eff
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Mode() Mode { return m.state.Mode() }

func (m *Machine) Criteria() filter.Criteria { return m.engine.Criteria() }

func (m *Machine) Visible() filter.VisibleSet { return m.engine.Visible() }

// Notice is the most recent notice; ClearNotice drops it.
func (m *Machine) Notice() string { return m.notice }

func (m *Machine) ClearNotice() { m.notice = "" }

// Prompt is the staged text or list title for the current mode.
func (m *Machine) Prompt() string {
	switch st := m.state.(type) {
	case Search:
		return "search: " + st.Text
	case CustomType:
		return "time: " + st.Text
	case ActionFilter:
		return "Action type"
	case TimePresets:
		return "Time range"
	case CustomPick:
		return st.Picker.Prompt()
	default:
		return ""
	}
}

// Err is the parse error shown while typing a time expression.
func (m *Machine) Err() string {
	if st, ok := m.state.(CustomType); ok {
		return st.Err
	}
	return ""
}

// Items returns the offered choices in list modes, or nil.
func (m *Machine) Items() []string {
	switch st := m.state.(type) {
	case ActionFilter:
		return m.indexes.ActionTypes
	case TimePresets:
		return TimeMenu()
	case CustomPick:
		opts := st.Picker.Options()
		out := make([]string, len(opts))
		for i, o := range opts {
			out[i] = o.String()
		}
		return out
	default:
		return nil
	}
}

// Selected is the highlighted item in list modes.
func (m *Machine) Selected() int {
	switch st := m.state.(type) {
	case ActionFilter:
		return st.Cursor
	case TimePresets:
		return st.Cursor
	case CustomPick:
		return st.Cursor
	default:
		return -1
	}
}
