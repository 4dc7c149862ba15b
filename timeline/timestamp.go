package timeline

import (
	"strings"
	"time"
)

// Layouts carrying their own offset; converted into the target location.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

// Layouts without an offset; read in the target location. time.Parse accepts
// a fractional second after the seconds field even when the layout omits it.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 3:04:05 PM",
	"2006-01-02",
}

// ParseTimestamp parses an event time cell. Empty or unrecognised input
// reports false.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), `"`))
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.In(loc), true
		}
	}
	for _, layout := range naiveLayouts {
		if ts, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
