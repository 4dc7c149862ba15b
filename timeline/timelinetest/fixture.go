// Package timelinetest builds timeline CSV fixtures for tests.
package timelinetest

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/andareed/siftly-timeline/timeline"
)

// Row maps fields to cell values; unset fields are written empty.
type Row map[timeline.Field]string

// Event is a shorthand row with the usual identifying fields set.
func Event(ts, action, file string) Row {
	return Row{
		timeline.FieldEventTime:    ts,
		timeline.FieldActionType:   action,
		timeline.FieldFileName:     file,
		timeline.FieldComputerName: "WS-0142",
	}
}

// Cells expands r into a full-width row.
func (r Row) Cells() []string {
	cells := make([]string, timeline.NumFields)
	for f, v := range r {
		cells[f] = v
	}
	return cells
}

// CSV renders a header plus rows.
func CSV(t testing.TB, rows ...Row) string {
	t.Helper()
	raw := make([][]string, 0, len(rows))
	for _, r := range rows {
		raw = append(raw, r.Cells())
	}
	return RawCSV(t, timeline.HeaderNames(), raw...)
}

// RawCSV renders an arbitrary header and rows, for malformed fixtures.
func RawCSV(t testing.TB, header []string, rows ...[]string) string {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if header != nil {
		if err := w.Write(header); err != nil {
			t.Fatalf("write header: %v", err)
		}
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush csv: %v", err)
	}
	return buf.String()
}

// WriteFile writes content into a temp dir and returns the path.
func WriteFile(t testing.TB, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timeline.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// Store ingests rows in UTC and fails the test on error.
func Store(t testing.TB, rows ...Row) *timeline.Store {
	t.Helper()
	s, err := timeline.Read(strings.NewReader(CSV(t, rows...)), timeline.Options{Location: time.UTC})
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return s
}

// Sample is the two-row fixture used across packages: a process creation on
// 2025-01-15 and a network connection on 2025-01-16.
func Sample(t testing.TB) *timeline.Store {
	t.Helper()
	first := Event("2025-01-15T10:00:00", "ProcessCreated", "powershell.exe")
	first[timeline.FieldProcessCommandLine] = `powershell.exe -enc SQBFAFgA`
	second := Event("2025-01-16T09:00:00", "ConnectionSuccess", "")
	second[timeline.FieldRemoteIP] = "203.0.113.7"
	second[timeline.FieldRemotePort] = "443"
	second[timeline.FieldInitiatingProcessFileName] = "chrome.exe"
	return Store(t, first, second)
}
