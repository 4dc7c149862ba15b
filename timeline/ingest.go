package timeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-timeline/logging"
)

// Options controls a single ingestion.
type Options struct {
	MaxRows  int            // <= 0 means DefaultMaxRows
	Location *time.Location // zone for naive timestamps; nil means time.Local
}

// Load opens path and ingests it. See Read.
func Load(path string, opts Options) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open timeline %q: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read timeline %q: %w", path, err)
	}
	s.source = path
	return s, nil
}

// Read streams a timeline export from r. The header must match Columns.
// Rows with the wrong cell count, broken quoting or an unparsable event time
// are skipped and counted. Reading stops once opts.MaxRows records are kept;
// later rows are never read.
func Read(r io.Reader, opts Options) (*Store, error) {
	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		return nil, err
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	s := &Store{}
	for len(s.records) < maxRows {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				logging.Debugf("timeline: skipping line %d: %v", pe.StartLine, pe.Err)
				s.skipped++
				continue
			}
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		rec, ok := NewRecord(row, line, opts.Location)
		if !ok {
			logging.Debugf("timeline: skipping line %d: %d cells", line, len(row))
			s.skipped++
			continue
		}
		s.add(rec)
	}
	s.capReached = len(s.records) >= maxRows

	logging.Infof("timeline: loaded %d events, skipped %d rows, cap reached %v",
		len(s.records), s.skipped, s.capReached)
	return s, nil
}

func checkHeader(header []string) error {
	if len(header) != int(NumFields) {
		return &HeaderError{
			Position: -1,
			Got:      strconv.Itoa(len(header)),
			Want:     strconv.Itoa(int(NumFields)),
		}
	}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if !strings.EqualFold(name, Columns[i].Name) {
			return &HeaderError{Position: i, Got: name, Want: Columns[i].Name}
		}
	}
	return nil
}
