package timeline

import "time"

// DefaultMaxRows caps how many records a single load keeps.
const DefaultMaxRows = 100_000

// Store is the ordered, capped set of ingested records. Records keep their
// file order and are owned by the store for the life of the process.
type Store struct {
	source     string
	records    []Record
	skipped    int
	capReached bool
	minTime    time.Time
	maxTime    time.Time
}

// NewStore builds a store from already-parsed records. Ingestion goes
// through Read/Load; this exists for callers assembling records directly.
func NewStore(source string, records []Record) *Store {
	s := &Store{source: source}
	for _, r := range records {
		s.add(r)
	}
	return s
}

func (s *Store) add(r Record) {
	if len(s.records) == 0 || r.Time.Before(s.minTime) {
		s.minTime = r.Time
	}
	if len(s.records) == 0 || r.Time.After(s.maxTime) {
		s.maxTime = r.Time
	}
	s.records = append(s.records, r)
}

func (s *Store) Source() string { return s.source }

func (s *Store) Len() int { return len(s.records) }

// At returns the record at position i in file order.
func (s *Store) At(i int) *Record { return &s.records[i] }

// Skipped is the number of malformed rows dropped during ingestion.
func (s *Store) Skipped() int { return s.skipped }

// CapReached reports whether ingestion stopped at the row cap.
func (s *Store) CapReached() bool { return s.capReached }

// Span returns the earliest and latest event time. ok is false for an
// empty store.
func (s *Store) Span() (min, max time.Time, ok bool) {
	if len(s.records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.minTime, s.maxTime, true
}

// NewRecord builds a record from exactly NumFields cells. It reports false if
// the cell count is wrong or the event time does not parse.
func NewRecord(cols []string, line int, loc *time.Location) (Record, bool) {
	if len(cols) != int(NumFields) {
		return Record{}, false
	}
	ts, ok := ParseTimestamp(cols[FieldEventTime], loc)
	if !ok {
		return Record{}, false
	}
	return newRecord(cols, ts, line), true
}
