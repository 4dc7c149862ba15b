package timeline

import (
	"fmt"
	"sort"
	"time"
)

// Date is a calendar date with no time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// At returns the instant hour:min:sec.nsec on d in loc.
func (d Date) At(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, min, sec, nsec, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Slot is one (date, hour-of-day) bucket.
type Slot struct {
	Date Date
	Hour int
}

func SlotOf(t time.Time) Slot {
	return Slot{Date: DateOf(t), Hour: t.Hour()}
}

func (s Slot) Compare(o Slot) int {
	if c := s.Date.Compare(o.Date); c != 0 {
		return c
	}
	return cmpInt(s.Hour, o.Hour)
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %02d:00", s.Date, s.Hour)
}

// TimeIndex is the sorted set of hour slots that contain at least one event.
type TimeIndex struct {
	slots []Slot
	loc   *time.Location
}

// NewTimeIndex builds an index from arbitrary slots, sorting and
// de-duplicating them.
func NewTimeIndex(slots []Slot, loc *time.Location) *TimeIndex {
	if loc == nil {
		loc = time.Local
	}
	sorted := append([]Slot(nil), slots...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })
	out := sorted[:0]
	for i, s := range sorted {
		if i > 0 && s == sorted[i-1] {
			continue
		}
		out = append(out, s)
	}
	return &TimeIndex{slots: out, loc: loc}
}

func (x *TimeIndex) Len() int { return len(x.slots) }

func (x *TimeIndex) Location() *time.Location { return x.loc }

// Slots returns a copy of the sorted slots.
func (x *TimeIndex) Slots() []Slot {
	return append([]Slot(nil), x.slots...)
}

func (x *TimeIndex) Contains(s Slot) bool {
	i := sort.Search(len(x.slots), func(i int) bool { return x.slots[i].Compare(s) >= 0 })
	return i < len(x.slots) && x.slots[i] == s
}

// Dates returns the distinct dates in ascending order.
func (x *TimeIndex) Dates() []Date {
	var out []Date
	for _, s := range x.slots {
		if n := len(out); n == 0 || out[n-1] != s.Date {
			out = append(out, s.Date)
		}
	}
	return out
}

// Hours returns the hours present on d in ascending order.
func (x *TimeIndex) Hours(d Date) []int {
	i := sort.Search(len(x.slots), func(i int) bool { return x.slots[i].Date.Compare(d) >= 0 })
	var out []int
	for ; i < len(x.slots) && x.slots[i].Date == d; i++ {
		out = append(out, x.slots[i].Hour)
	}
	return out
}

// Indexes are the lookups derived once from a loaded store.
type Indexes struct {
	ActionTypes []string
	Time        *TimeIndex
}

// BuildIndexes computes the sorted distinct action types and hour slots in a
// single pass over s. Empty action types are not indexed.
func BuildIndexes(s *Store, loc *time.Location) Indexes {
	if loc == nil {
		loc = time.Local
	}
	actions := make(map[string]struct{})
	slots := make(map[Slot]struct{})
	for i := range s.records {
		r := &s.records[i]
		if at := r.ActionType(); at != "" {
			actions[at] = struct{}{}
		}
		slots[SlotOf(r.Time.In(loc))] = struct{}{}
	}

	out := Indexes{ActionTypes: make([]string, 0, len(actions))}
	for at := range actions {
		out.ActionTypes = append(out.ActionTypes, at)
	}
	sort.Strings(out.ActionTypes)

	list := make([]Slot, 0, len(slots))
	for sl := range slots {
		list = append(list, sl)
	}
	out.Time = NewTimeIndex(list, loc)
	return out
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
