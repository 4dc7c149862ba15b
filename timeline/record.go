package timeline

import (
	"strings"
	"time"
)

// searchSep separates fields inside the search haystack so a term never
// matches across a field boundary.
const searchSep = "\x00"

// Record is one timeline event. It is never modified after ingestion.
type Record struct {
	fields   [NumFields]string
	haystack string

	Time time.Time
	Line int // 1-based line of the row in the source file
}

func newRecord(cols []string, ts time.Time, line int) Record {
	r := Record{Time: ts, Line: line}
	copy(r.fields[:], cols)

	var b strings.Builder
	for i, c := range Columns {
		if !c.Searchable || r.fields[i] == "" {
			continue
		}
		b.WriteString(strings.ToLower(r.fields[i]))
		b.WriteString(searchSep)
	}
	r.haystack = b.String()
	return r
}

func (r *Record) Get(f Field) string {
	if f < 0 || f >= NumFields {
		return ""
	}
	return r.fields[f]
}

func (r *Record) ActionType() string {
	return r.fields[FieldActionType]
}

// Matches reports whether term, already lowercased, is a substring of any
// searchable field.
func (r *Record) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(r.haystack, term)
}

// Detail is one labelled, non-empty field value.
type Detail struct {
	Name  string
	Value string
}

// Details returns every non-empty field in header order.
func (r *Record) Details() []Detail {
	out := make([]Detail, 0, 16)
	for i, c := range Columns {
		v := strings.TrimSpace(strings.Trim(r.fields[i], `"`))
		if v == "" {
			continue
		}
		out = append(out, Detail{Name: c.Name, Value: v})
	}
	return out
}

// Summary is the one-line list form: time | action | file (or computer).
func (r *Record) Summary() string {
	ts := strings.Trim(r.fields[FieldEventTime], `"`)
	action := r.fields[FieldActionType]
	if action == "" {
		action = "—"
	}
	target := r.fields[FieldFileName]
	if target == "" {
		target = r.fields[FieldInitiatingProcessFileName]
	}
	if target == "" {
		target = r.fields[FieldComputerName]
	}
	return ts + " | " + action + " | " + strings.Trim(target, `"`)
}
