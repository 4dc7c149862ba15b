package timerange

import (
	"errors"
	"fmt"

	"github.com/andareed/siftly-timeline/timeline"
)

// ErrNoData is returned when there are no hour slots to pick from.
var ErrNoData = errors.New("no timestamps to pick from")

// Step is one stage of the picker flow.
type Step int

const (
	StepStartDate Step = iota
	StepStartHour
	StepEndDate
	StepEndHour
)

func (s Step) String() string {
	switch s {
	case StepStartDate:
		return "Start date"
	case StepStartHour:
		return "Start hour"
	case StepEndDate:
		return "End date"
	case StepEndHour:
		return "End hour"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Option is one offered choice. Hour is meaningful only on hour steps.
type Option struct {
	Date timeline.Date
	Hour int
	step Step
}

func (o Option) String() string {
	switch o.step {
	case StepStartHour, StepEndHour:
		return fmt.Sprintf("%02d:00", o.Hour)
	default:
		return o.Date.String()
	}
}

var (
	fullPlan    = []Step{StepStartDate, StepStartHour, StepEndDate, StepEndHour}
	oneDatePlan = []Step{StepStartHour, StepEndHour}
)

// Picker is the data-constrained custom range flow. It is an immutable
// value: Commit and Back return new pickers. The offered options are always
// recomputed from the index and the commitments so far, so no reachable
// selection can fall outside the index or end before it starts.
type Picker struct {
	index *timeline.TimeIndex
	plan  []Step
	picks []Option
}

// NewPicker starts a flow over index. Single-date data skips both date steps.
func NewPicker(index *timeline.TimeIndex) (Picker, error) {
	if index == nil || index.Len() == 0 {
		return Picker{}, ErrNoData
	}
	plan := fullPlan
	if len(index.Dates()) == 1 {
		plan = oneDatePlan
	}
	return Picker{index: index, plan: plan}, nil
}

// Step is the stage awaiting a choice. A completed picker stays on its
// last step.
func (p Picker) Step() Step {
	if len(p.picks) >= len(p.plan) {
		return p.plan[len(p.plan)-1]
	}
	return p.plan[len(p.picks)]
}

// Position returns the 1-based step number and the plan length.
func (p Picker) Position() (int, int) { return len(p.picks) + 1, len(p.plan) }

// Committed returns the choices made so far, oldest first.
func (p Picker) Committed() []Option {
	return append([]Option(nil), p.picks...)
}

type selection struct {
	startDate, endDate timeline.Date
	startHour, endHour int
}

func (p Picker) selection() selection {
	var sel selection
	if len(p.plan) == len(oneDatePlan) {
		d := p.index.Dates()[0]
		sel.startDate, sel.endDate = d, d
	}
	for i, o := range p.picks {
		switch p.plan[i] {
		case StepStartDate:
			sel.startDate = o.Date
		case StepStartHour:
			sel.startHour = o.Hour
		case StepEndDate:
			sel.endDate = o.Date
		case StepEndHour:
			sel.endHour = o.Hour
		}
	}
	return sel
}

// Options lists the choices valid for the current step.
func (p Picker) Options() []Option {
	sel := p.selection()
	step := p.Step()
	var out []Option
	switch step {
	case StepStartDate:
		for _, d := range p.index.Dates() {
			out = append(out, Option{Date: d, step: step})
		}
	case StepStartHour:
		for _, h := range p.index.Hours(sel.startDate) {
			out = append(out, Option{Date: sel.startDate, Hour: h, step: step})
		}
	case StepEndDate:
		for _, d := range p.index.Dates() {
			if !d.Before(sel.startDate) {
				out = append(out, Option{Date: d, step: step})
			}
		}
	case StepEndHour:
		sameDay := sel.endDate == sel.startDate
		for _, h := range p.index.Hours(sel.endDate) {
			if sameDay && h < sel.startHour {
				continue
			}
			out = append(out, Option{Date: sel.endDate, Hour: h, step: step})
		}
	}
	return out
}

// Prompt describes the current step and what has been chosen so far.
func (p Picker) Prompt() string {
	n, total := p.Position()
	prompt := fmt.Sprintf("%s (%d/%d)", p.Step(), n, total)
	sel := p.selection()
	switch p.Step() {
	case StepStartHour:
		prompt += " on " + sel.startDate.String()
	case StepEndDate:
		prompt += fmt.Sprintf(" from %s %02d:00", sel.startDate, sel.startHour)
	case StepEndHour:
		prompt += fmt.Sprintf(" on %s, from %s %02d:00", sel.endDate, sel.startDate, sel.startHour)
	}
	return prompt
}

// Commit chooses option i of the current step. On the final step it returns
// the completed interval, from the start of the start hour to the last
// instant of the end hour.
func (p Picker) Commit(i int) (Picker, *Interval, error) {
	opts := p.Options()
	if i < 0 || i >= len(opts) {
		return p, nil, fmt.Errorf("option %d out of range [0,%d)", i, len(opts))
	}
	next := Picker{
		index: p.index,
		plan:  p.plan,
		picks: append(p.Committed(), opts[i]),
	}
	if len(next.picks) < len(next.plan) {
		return next, nil, nil
	}

	sel := next.selection()
	loc := p.index.Location()
	iv := &Interval{
		Start: sel.startDate.At(sel.startHour, 0, 0, 0, loc),
		End:   endOfHour(sel.endDate, sel.endHour, loc),
	}
	return next, iv, nil
}

// Back undoes the latest commitment. It reports false when nothing has been
// committed, meaning the flow should be left.
func (p Picker) Back() (Picker, bool) {
	if len(p.picks) == 0 {
		return p, false
	}
	return Picker{index: p.index, plan: p.plan, picks: p.picks[:len(p.picks)-1 : len(p.picks)-1]}, true
}

// IndexOf returns the position of o among the current options, or 0.
func (p Picker) IndexOf(o Option) int {
	for i, c := range p.Options() {
		if c.Date == o.Date && c.Hour == o.Hour {
			return i
		}
	}
	return 0
}
