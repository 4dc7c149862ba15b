// Package timerange resolves presets, typed expressions and picker selections
// into inclusive time intervals.
package timerange

import (
	"time"

	"github.com/andareed/siftly-timeline/timeline"
)

const displayLayout = "2006-01-02 15:04"

// Interval is an inclusive [Start, End] span.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies inside iv, both ends included.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.End)
}

func (iv Interval) String() string {
	return iv.Start.Format(displayLayout) + " → " + iv.End.Format(displayLayout)
}

// startOfDay and endOfDay bound d in loc. End is the last nanosecond of the
// day so fractional timestamps late in the day stay inside.
func startOfDay(d timeline.Date, loc *time.Location) time.Time {
	return d.At(0, 0, 0, 0, loc)
}

func endOfDay(d timeline.Date, loc *time.Location) time.Time {
	return d.At(23, 59, 59, 999_999_999, loc)
}

func endOfHour(d timeline.Date, hour int, loc *time.Location) time.Time {
	return d.At(hour, 59, 59, 999_999_999, loc)
}

// dayBefore steps back one calendar day. Noon keeps DST transitions out of
// the arithmetic.
func dayBefore(d timeline.Date, loc *time.Location) timeline.Date {
	return timeline.DateOf(d.At(12, 0, 0, 0, loc).AddDate(0, 0, -1))
}
