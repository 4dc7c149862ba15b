package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	plus1 := time.FixedZone("UTC+1", 60*60)

	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2025-01-15T10:00:00Z", time.Date(2025, 1, 15, 11, 0, 0, 0, plus1)},
		{"2025-01-15T10:00:00.1234567Z", time.Date(2025, 1, 15, 11, 0, 0, 123456700, plus1)},
		{"2025-01-15T10:00:00+02:00", time.Date(2025, 1, 15, 9, 0, 0, 0, plus1)},
		{"2025-01-15T10:00:00", time.Date(2025, 1, 15, 10, 0, 0, 0, plus1)},
		{"2025-01-15T10:00:00.5", time.Date(2025, 1, 15, 10, 0, 0, 500_000_000, plus1)},
		{"2025-01-15 10:00:00", time.Date(2025, 1, 15, 10, 0, 0, 0, plus1)},
		{"2025-01-15 10:00", time.Date(2025, 1, 15, 10, 0, 0, 0, plus1)},
		{"1/15/2025 3:04:05 PM", time.Date(2025, 1, 15, 15, 4, 5, 0, plus1)},
		{"2025-01-15", time.Date(2025, 1, 15, 0, 0, 0, 0, plus1)},
		{`  "2025-01-15T10:00:00"  `, time.Date(2025, 1, 15, 10, 0, 0, 0, plus1)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.raw, plus1)
			assert.True(t, ok)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
			assert.Equal(t, plus1, got.Location())
		})
	}
}

func TestParseTimestampRejects(t *testing.T) {
	for _, raw := range []string{"", "   ", `""`, "yesterday", "2025-13-01", "15/01/2025", "2025-01-15T25:00:00"} {
		_, ok := ParseTimestamp(raw, time.UTC)
		assert.False(t, ok, raw)
	}
}

func TestParseTimestampDefaultsToLocal(t *testing.T) {
	got, ok := ParseTimestamp("2025-01-15 10:00", nil)
	assert.True(t, ok)
	assert.Equal(t, time.Local, got.Location())
}
