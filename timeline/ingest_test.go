package timeline_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-timeline/timeline"
	"github.com/andareed/siftly-timeline/timeline/timelinetest"
)

func read(t *testing.T, content string, maxRows int) (*timeline.Store, error) {
	t.Helper()
	return timeline.Read(strings.NewReader(content), timeline.Options{MaxRows: maxRows, Location: time.UTC})
}

func TestReadSample(t *testing.T) {
	s := timelinetest.Sample(t)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "ProcessCreated", s.At(0).ActionType())
	assert.Equal(t, "ConnectionSuccess", s.At(1).ActionType())
	assert.Equal(t, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC), s.At(0).Time)
	assert.Equal(t, 2, s.At(0).Line)
	assert.Equal(t, 3, s.At(1).Line)
	assert.Zero(t, s.Skipped())
	assert.False(t, s.CapReached())
}

func TestReadSkipsMalformedRows(t *testing.T) {
	good := timelinetest.Event("2025-01-15T10:00:00", "ProcessCreated", "a.exe").Cells()
	badTime := timelinetest.Event("not a time", "ProcessCreated", "b.exe").Cells()
	emptyTime := timelinetest.Event("", "ProcessCreated", "c.exe").Cells()
	short := good[:10]
	long := append(append([]string(nil), good...), "extra")

	content := timelinetest.RawCSV(t, timeline.HeaderNames(), good, badTime, short, emptyTime, long, good)
	s, err := read(t, content, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 4, s.Skipped())
	assert.Equal(t, 2, s.At(0).Line)
	assert.Equal(t, 7, s.At(1).Line)
}

func TestReadSkipsBrokenQuoting(t *testing.T) {
	good := timelinetest.CSV(t, timelinetest.Event("2025-01-15T10:00:00", "ProcessCreated", "a.exe"))
	broken := `2025-01-15T11:00:00,x"y` + strings.Repeat(",", int(timeline.NumFields)-2) + "\n"
	tail := timelinetest.RawCSV(t, nil, timelinetest.Event("2025-01-15T12:00:00", "FileCreated", "b.exe").Cells())

	s, err := read(t, good+broken+tail, 0)
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Skipped())
	assert.Equal(t, "FileCreated", s.At(1).ActionType())
}

func TestReadHonoursQuotedFields(t *testing.T) {
	row := timelinetest.Event("2025-01-15T10:00:00", "ProcessCreated", "a.exe")
	row[timeline.FieldProcessCommandLine] = "cmd.exe /c \"echo a, b\"\nsecond line"
	row[timeline.FieldAdditionalFields] = `{"key":"value, with comma"}`

	s, err := read(t, timelinetest.CSV(t, row), 0)
	require.NoError(t, err)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "cmd.exe /c \"echo a, b\"\nsecond line", s.At(0).Get(timeline.FieldProcessCommandLine))
	assert.Equal(t, `{"key":"value, with comma"}`, s.At(0).Get(timeline.FieldAdditionalFields))
}

func TestReadStopsAtCap(t *testing.T) {
	var rows []timelinetest.Row
	for i := 0; i < 10; i++ {
		ts := fmt.Sprintf("2025-01-15T10:%02d:00", i)
		rows = append(rows, timelinetest.Event(ts, "ProcessCreated", fmt.Sprintf("p%d.exe", i)))
	}
	s, err := read(t, timelinetest.CSV(t, rows...), 4)
	require.NoError(t, err)

	require.Equal(t, 4, s.Len())
	assert.True(t, s.CapReached())
	for i := 0; i < 4; i++ {
		assert.Equal(t, fmt.Sprintf("p%d.exe", i), s.At(i).Get(timeline.FieldFileName))
	}
}

func TestReadCapIgnoresLaterGarbage(t *testing.T) {
	content := timelinetest.CSV(t,
		timelinetest.Event("2025-01-15T10:00:00", "A", "a"),
		timelinetest.Event("2025-01-15T11:00:00", "B", "b"),
	) + "this line is never read\n"

	s, err := read(t, content, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Zero(t, s.Skipped())
}

func TestReadCountProperty(t *testing.T) {
	good := timelinetest.Event("2025-01-15T10:00:00", "A", "a").Cells()
	bad := timelinetest.Event("garbage", "A", "a").Cells()

	for n := 0; n < 6; n++ {
		var rows [][]string
		malformed := 0
		for i := 0; i < n*3; i++ {
			if i%3 == 1 {
				rows = append(rows, bad)
				malformed++
				continue
			}
			rows = append(rows, good)
		}
		s, err := read(t, timelinetest.RawCSV(t, timeline.HeaderNames(), rows...), 0)
		require.NoError(t, err)
		assert.Equal(t, len(rows)-malformed, s.Len(), "rows=%d", len(rows))
	}
}

func TestReadHeaderErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := read(t, "", 0)
		assert.ErrorIs(t, err, timeline.ErrMissingHeader)
	})

	t.Run("wrong column count", func(t *testing.T) {
		_, err := read(t, "Event Time,Action Type\n", 0)
		require.ErrorIs(t, err, timeline.ErrMalformedHeader)
		var he *timeline.HeaderError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, -1, he.Position)
	})

	t.Run("wrong column name", func(t *testing.T) {
		header := timeline.HeaderNames()
		header[3] = "Activity"
		_, err := read(t, timelinetest.RawCSV(t, header), 0)
		var he *timeline.HeaderError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, 3, he.Position)
		assert.Equal(t, "Activity", he.Got)
		assert.Equal(t, "Action Type", he.Want)
	})

	t.Run("case, spacing and BOM are tolerated", func(t *testing.T) {
		header := timeline.HeaderNames()
		header[0] = "\ufeffevent time"
		header[5] = "  FOLDER PATH "
		s, err := read(t, timelinetest.RawCSV(t, header, timelinetest.Event("2025-01-15", "A", "a").Cells()), 0)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	})
}

func TestLoad(t *testing.T) {
	path := timelinetest.WriteFile(t, timelinetest.CSV(t, timelinetest.Event("2025-01-15T10:00:00", "A", "a")))

	s, err := timeline.Load(path, timeline.Options{Location: time.UTC})
	require.NoError(t, err)
	assert.Equal(t, path, s.Source())
	assert.Equal(t, 1, s.Len())

	_, err = timeline.Load(path+".missing", timeline.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSpan(t *testing.T) {
	s := timelinetest.Store(t,
		timelinetest.Event("2025-01-16T09:00:00", "A", "a"),
		timelinetest.Event("2025-01-14T23:00:00", "A", "a"),
		timelinetest.Event("2025-01-15T10:00:00", "A", "a"),
	)
	min, max, ok := s.Span()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 14, 23, 0, 0, 0, time.UTC), min)
	assert.Equal(t, time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC), max)

	_, _, ok = timeline.NewStore("", nil).Span()
	assert.False(t, ok)
}
