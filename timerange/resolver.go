package timerange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-timeline/timeline"
)

// Reference selects what "now" means for relative ranges.
type Reference string

const (
	// ReferenceWallclock resolves relative ranges against the system clock.
	ReferenceWallclock Reference = "wallclock"
	// ReferenceData resolves them against the latest event in the data.
	ReferenceData Reference = "data"
)

// ParseReference validates a reference name.
func ParseReference(s string) (Reference, error) {
	switch ref := Reference(strings.ToLower(strings.TrimSpace(s))); ref {
	case ReferenceWallclock, ReferenceData:
		return ref, nil
	case "":
		return ReferenceWallclock, nil
	default:
		return "", fmt.Errorf("unknown time reference %q (want %s or %s)", s, ReferenceWallclock, ReferenceData)
	}
}

// Bounds is anything that knows the earliest and latest event time.
type Bounds interface {
	Span() (min, max time.Time, ok bool)
}

type Options struct {
	Location  *time.Location   // nil means time.Local
	Reference Reference        // empty means ReferenceWallclock
	Now       func() time.Time // nil means time.Now
}

// Resolver turns presets and typed expressions into intervals.
type Resolver struct {
	now     func() time.Time
	loc     *time.Location
	ref     Reference
	span    Interval
	hasSpan bool
}

func NewResolver(data Bounds, opts Options) *Resolver {
	r := &Resolver{now: opts.Now, loc: opts.Location, ref: opts.Reference}
	if r.now == nil {
		r.now = time.Now
	}
	if r.loc == nil {
		r.loc = time.Local
	}
	if r.ref == "" {
		r.ref = ReferenceWallclock
	}
	if data != nil {
		if min, max, ok := data.Span(); ok {
			r.span = Interval{Start: min.In(r.loc), End: max.In(r.loc)}
			r.hasSpan = true
		}
	}
	return r
}

func (r *Resolver) Location() *time.Location { return r.loc }

// Now is the instant relative ranges are measured from.
func (r *Resolver) Now() time.Time {
	if r.ref == ReferenceData && r.hasSpan {
		return r.span.End
	}
	return r.now().In(r.loc)
}

func (r *Resolver) day(d timeline.Date) Interval {
	return Interval{Start: startOfDay(d, r.loc), End: endOfDay(d, r.loc)}
}

func dateOf(t time.Time) timeline.Date { return timeline.DateOf(t) }

// Expression is the outcome of a typed time expression. Clear means the
// time filter should be removed; otherwise Interval is set.
type Expression struct {
	Clear    bool
	Interval Interval
	Label    string
}

// ParseError reports a typed expression that could not be resolved.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return "parse error: " + e.Reason
	}
	return fmt.Sprintf("parse error: %s in %q", e.Reason, e.Input)
}

var relativeRE = regexp.MustCompile(`^(\d+) ?(d|day|days|h|hour|hours)$`)

// maxRelativeHours keeps N*1h well inside time.Duration.
const maxRelativeHours = 100 * 365 * 24

var pointLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse resolves a typed expression. Input is case-insensitive and runs of
// whitespace are collapsed. Grammar:
//
//	clear
//	today | yesterday
//	last N days | last Nd | last N hours | last Nh   (also bare Nd, Nh)
//	after <point> | from <point>
//	before <point>
//	<point> to <point> | <point> .. <point>
//
// where <point> is YYYY-MM-DD or YYYY-MM-DD HH:MM[:SS].
func (r *Resolver) Parse(input string) (Expression, error) {
	s := strings.ToLower(strings.Join(strings.Fields(input), " "))
	fail := func(reason string) (Expression, error) {
		return Expression{}, &ParseError{Input: strings.TrimSpace(input), Reason: reason}
	}

	switch s {
	case "":
		return fail("empty expression")
	case "clear":
		return Expression{Clear: true, Label: s}, nil
	case "today":
		return Expression{Interval: r.Preset(Today), Label: s}, nil
	case "yesterday":
		return Expression{Interval: r.Preset(Yesterday), Label: s}, nil
	}

	if rest, ok := strings.CutPrefix(s, "last "); ok {
		return r.relative(rest, s, fail)
	}
	if relativeRE.MatchString(s) {
		return r.relative(s, "last "+s, fail)
	}

	if rest, ok := cutKeyword(s, "after", "from"); ok {
		start, _, err := r.point(rest)
		if err != nil {
			return fail(err.Error())
		}
		end := start
		if r.hasSpan && r.span.End.After(end) {
			end = r.span.End
		}
		return Expression{Interval: Interval{Start: start, End: end}, Label: s}, nil
	}
	if rest, ok := cutKeyword(s, "before"); ok {
		_, end, err := r.point(rest)
		if err != nil {
			return fail(err.Error())
		}
		start := end
		if r.hasSpan && r.span.Start.Before(start) {
			start = r.span.Start
		}
		return Expression{Interval: Interval{Start: start, End: end}, Label: s}, nil
	}

	if a, b, ok := cutRange(s); ok {
		start, _, err := r.point(a)
		if err != nil {
			return fail(err.Error())
		}
		_, end, err := r.point(b)
		if err != nil {
			return fail(err.Error())
		}
		if start.After(end) {
			return fail("start is after end")
		}
		return Expression{Interval: Interval{Start: start, End: end}, Label: s}, nil
	}

	return fail("unrecognised expression")
}

func (r *Resolver) relative(rest, label string, fail func(string) (Expression, error)) (Expression, error) {
	m := relativeRE.FindStringSubmatch(rest)
	if m == nil {
		return fail("want last N days or last N hours")
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return fail("N must be a positive integer")
	}
	hours := n
	if m[2][0] == 'd' {
		hours = n * 24
	}
	if n > maxRelativeHours || hours > maxRelativeHours {
		return fail("range too large")
	}
	return Expression{Interval: lastHours(r.Now(), hours), Label: label}, nil
}

// point parses a date or datetime and returns the earliest and latest
// instants it names: a whole day for a date, a whole minute or second for a
// datetime.
func (r *Resolver) point(s string) (first, last time.Time, err error) {
	s = strings.TrimSpace(s)
	for _, layout := range pointLayouts {
		t, perr := time.ParseInLocation(layout, s, r.loc)
		if perr != nil {
			continue
		}
		switch layout {
		case "2006-01-02":
			d := dateOf(t)
			return startOfDay(d, r.loc), endOfDay(d, r.loc), nil
		case "2006-01-02 15:04":
			return t, t.Add(time.Minute - 1), nil
		default:
			return t, t.Add(time.Second - 1), nil
		}
	}
	if s == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("missing date")
	}
	return time.Time{}, time.Time{}, fmt.Errorf("bad date %q (want YYYY-MM-DD [HH:MM[:SS]])", s)
}

func cutKeyword(s string, words ...string) (string, bool) {
	for _, w := range words {
		if rest, ok := strings.CutPrefix(s, w+" "); ok {
			return rest, true
		}
		if s == w {
			return "", true
		}
	}
	return "", false
}

func cutRange(s string) (string, string, bool) {
	if a, b, ok := strings.Cut(s, " to "); ok {
		return a, b, true
	}
	if a, b, ok := strings.Cut(s, ".."); ok {
		return strings.TrimSpace(a), strings.TrimSpace(b), true
	}
	return "", "", false
}
