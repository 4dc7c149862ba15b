package timerange

import "time"

// Preset is a named range relative to now.
type Preset int

const (
	Today Preset = iota
	Yesterday
	Last24Hours
	Last7Days
	Last30Days
)

// Presets lists every preset in menu order.
var Presets = []Preset{Today, Yesterday, Last24Hours, Last7Days, Last30Days}

func (p Preset) String() string {
	switch p {
	case Today:
		return "Today"
	case Yesterday:
		return "Yesterday"
	case Last24Hours:
		return "Last 24 hours"
	case Last7Days:
		return "Last 7 days"
	case Last30Days:
		return "Last 30 days"
	default:
		return "Unknown"
	}
}

// Preset resolves p against the resolver's notion of now.
func (r *Resolver) Preset(p Preset) Interval {
	now := r.Now()
	switch p {
	case Yesterday:
		return r.day(dayBefore(dateOf(now), r.loc))
	case Last24Hours:
		return lastHours(now, 24)
	case Last7Days:
		return lastHours(now, 7*24)
	case Last30Days:
		return lastHours(now, 30*24)
	default:
		return r.day(dateOf(now))
	}
}

func lastHours(now time.Time, n int) Interval {
	return Interval{Start: now.Add(-time.Duration(n) * time.Hour), End: now}
}
