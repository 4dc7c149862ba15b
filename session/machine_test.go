package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-timeline/filter"
	"github.com/andareed/siftly-timeline/session"
	"github.com/andareed/siftly-timeline/timeline"
	"github.com/andareed/siftly-timeline/timeline/timelinetest"
	"github.com/andareed/siftly-timeline/timerange"
)

var mockNow = time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC)

func newMachine(t *testing.T, s *timeline.Store) *session.Machine {
	t.Helper()
	idx := timeline.BuildIndexes(s, time.UTC)
	r := timerange.NewResolver(s, timerange.Options{
		Location: time.UTC,
		Now:      func() time.Time { return mockNow },
	})
	return session.NewMachine(filter.NewEngine(s, 0), idx, r)
}

func feed(m *session.Machine, keys ...session.Key) session.Effect {
	var eff session.Effect
	for _, k := range keys {
		eff = m.Handle(k)
	}
	return eff
}

func TestInitialState(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	assert.Equal(t, session.ModeNormal, m.Mode())
	assert.Equal(t, []int{0, 1}, m.Visible().Indices)
	assert.Equal(t, -1, m.Selected())
	assert.Nil(t, m.Items())
}

func TestSearchCommit(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))

	feed(m, session.BeginSearch)
	feed(m, session.Runes("CREATX")...)
	feed(m, session.Backspace, session.Rune('E'))
	assert.Equal(t, session.ModeSearch, m.Mode())
	assert.Equal(t, "search: CREATE", m.Prompt())
	assert.Equal(t, []int{0, 1}, m.Visible().Indices, "staged text is not applied")

	eff := feed(m, session.Confirm)
	require.NotNil(t, eff.Criteria)
	assert.Equal(t, session.ModeNormal, m.Mode())
	assert.Equal(t, []string{"create"}, m.Criteria().Terms)
	assert.Equal(t, []int{0}, m.Visible().Indices)
	assert.Equal(t, `Search: "create" (1 events)`, m.Notice())

	feed(m, session.BeginSearch)
	assert.Equal(t, session.Search{Text: "create"}, m.State(), "search opens with the current terms")
}

func TestSearchCancelKeepsPriorSearch(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	feed(m, session.BeginSearch)
	feed(m, session.Runes("chrome")...)
	feed(m, session.Confirm)

	feed(m, session.BeginSearch, session.Backspace, session.Backspace)
	feed(m, session.Runes("zzz")...)
	eff := feed(m, session.Cancel)

	assert.Nil(t, eff.Criteria)
	assert.Equal(t, session.ModeNormal, m.Mode())
	assert.Equal(t, []string{"chrome"}, m.Criteria().Terms)
	assert.Equal(t, []int{1}, m.Visible().Indices)
}

func TestSearchEmptyClearsTerms(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	feed(m, session.BeginSearch, session.Rune('x'), session.Confirm)
	feed(m, session.BeginSearch, session.Backspace, session.Confirm)

	assert.Empty(t, m.Criteria().Terms)
	assert.Equal(t, "Search cleared (2 events)", m.Notice())
}

func TestQuitOnlyFromNormal(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))

	feed(m, session.BeginSearch)
	eff := m.Handle(session.Quit)
	assert.False(t, eff.Quit)
	assert.Equal(t, session.ModeSearch, m.Mode())

	feed(m, session.Cancel)
	assert.True(t, m.Handle(session.Quit).Quit)
}

func TestActionFilter(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))

	feed(m, session.BeginActionFilter)
	assert.Equal(t, []string{"ConnectionSuccess", "ProcessCreated"}, m.Items())
	assert.Equal(t, 0, m.Selected())

	feed(m, session.Down, session.Down)
	assert.Equal(t, 1, m.Selected(), "cursor stops at the last entry")
	feed(m, session.Confirm)
	assert.Equal(t, "ProcessCreated", m.Criteria().ActionType)
	assert.Equal(t, []int{0}, m.Visible().Indices)
	assert.Equal(t, "Action type: ProcessCreated (1 events)", m.Notice())

	feed(m, session.BeginActionFilter)
	assert.Equal(t, 1, m.Selected(), "list opens on the active action type")

	eff := feed(m, session.Cancel)
	require.NotNil(t, eff.Criteria)
	assert.Equal(t, "", m.Criteria().ActionType)
	assert.Equal(t, []int{0, 1}, m.Visible().Indices)
}

func TestActionFilterCancelWithoutFilterChangesNothing(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	eff := feed(m, session.BeginActionFilter, session.Cancel)
	assert.Nil(t, eff.Criteria)
	assert.Equal(t, session.ModeNormal, m.Mode())
}

func TestActionFilterEmptyList(t *testing.T) {
	s := timelinetest.Store(t, timelinetest.Event("2025-01-15T10:00:00", "", "a"))
	m := newMachine(t, s)
	eff := feed(m, session.BeginActionFilter, session.Down, session.Confirm)
	assert.Nil(t, eff.Criteria)
	assert.Equal(t, session.ModeNormal, m.Mode())
}

func TestTimePresetToday(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))

	feed(m, session.BeginTime)
	assert.Equal(t, session.ModeTimePresets, m.Mode())
	assert.Equal(t, session.TimeMenu(), m.Items())
	assert.Len(t, m.Items(), 7)

	feed(m, session.Confirm)
	assert.Equal(t, session.ModeNormal, m.Mode())
	assert.Equal(t, []int{1}, m.Visible().Indices)
	assert.Equal(t, "Time: Today (1 events)", m.Notice())
}

func TestTimePresetsCancel(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	eff := feed(m, session.BeginTime, session.Down, session.Cancel)
	assert.Nil(t, eff.Criteria)
	assert.Nil(t, m.Criteria().Time)
}

func openCustomPick(m *session.Machine) {
	feed(m, session.BeginTime)
	for i := 0; i < len(timerange.Presets); i++ {
		feed(m, session.Down)
	}
	feed(m, session.Confirm)
}

func TestCustomPickFlow(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	openCustomPick(m)
	require.Equal(t, session.ModeCustomPick, m.Mode())
	assert.Equal(t, []string{"2025-01-15", "2025-01-16"}, m.Items())

	feed(m, session.Confirm) // 2025-01-15
	assert.Equal(t, []string{"10:00"}, m.Items())
	feed(m, session.Confirm) // 10:00
	assert.Equal(t, []string{"2025-01-15", "2025-01-16"}, m.Items())
	feed(m, session.Down, session.Confirm) // 2025-01-16
	assert.Equal(t, []string{"09:00"}, m.Items())

	eff := feed(m, session.Confirm)
	require.NotNil(t, eff.Criteria)
	require.NotNil(t, eff.Criteria.Time)
	assert.Equal(t, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC), eff.Criteria.Time.Start)
	assert.Equal(t, time.Date(2025, 1, 16, 9, 59, 59, 999_999_999, time.UTC), eff.Criteria.Time.End)
	assert.Equal(t, session.ModeNormal, m.Mode())
	assert.Equal(t, []int{0, 1}, m.Visible().Indices)
}

func TestCustomPickKeepsOtherPredicates(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	feed(m, session.BeginActionFilter, session.Down, session.Confirm)
	openCustomPick(m)
	feed(m, session.Confirm, session.Confirm, session.Confirm, session.Confirm)

	assert.Equal(t, "ProcessCreated", m.Criteria().ActionType)
	require.NotNil(t, m.Criteria().Time)
	assert.Equal(t, []int{0}, m.Visible().Indices)
}

func TestCustomPickBack(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	openCustomPick(m)

	feed(m, session.Down, session.Confirm) // 2025-01-16
	assert.Equal(t, []string{"09:00"}, m.Items())

	feed(m, session.Cancel)
	assert.Equal(t, session.ModeCustomPick, m.Mode())
	assert.Equal(t, []string{"2025-01-15", "2025-01-16"}, m.Items(), "stepping back re-offers every date")
	assert.Equal(t, 1, m.Selected(), "the undone choice is highlighted")

	feed(m, session.Cancel)
	assert.Equal(t, session.TimePresets{Cursor: len(timerange.Presets)}, m.State())
	assert.Nil(t, m.Criteria().Time)
}

func TestCustomPickSingleDate(t *testing.T) {
	s := timelinetest.Store(t,
		timelinetest.Event("2025-01-15T08:00:00", "A", "a"),
		timelinetest.Event("2025-01-15T12:00:00", "B", "b"),
		timelinetest.Event("2025-01-15T20:00:00", "C", "c"),
	)
	m := newMachine(t, s)
	openCustomPick(m)

	assert.Equal(t, []string{"08:00", "12:00", "20:00"}, m.Items())
	feed(m, session.Down, session.Confirm)
	assert.Equal(t, []string{"12:00", "20:00"}, m.Items())
	feed(m, session.Confirm)
	assert.Equal(t, []int{1}, m.Visible().Indices)
}

func TestCustomPickWithoutData(t *testing.T) {
	m := newMachine(t, timeline.NewStore("", nil))
	openCustomPick(m)
	assert.Equal(t, session.ModeTimePresets, m.Mode())
	assert.Contains(t, m.Notice(), "no timestamps")
}

func openCustomType(m *session.Machine) {
	feed(m, session.BeginTime)
	for i := 0; i <= len(timerange.Presets); i++ {
		feed(m, session.Down)
	}
	feed(m, session.Confirm)
}

func TestCustomTypeParseErrorStays(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	openCustomType(m)
	require.Equal(t, session.ModeCustomType, m.Mode())

	feed(m, session.Runes("2025-01-16 to 2025-01-15")...)
	eff := feed(m, session.Confirm)
	assert.Nil(t, eff.Criteria)
	assert.Equal(t, session.ModeCustomType, m.Mode())
	assert.Contains(t, m.Err(), "parse error")
	assert.Equal(t, "time: 2025-01-16 to 2025-01-15", m.Prompt())
	assert.Nil(t, m.Criteria().Time)

	feed(m, session.Rune(' '))
	assert.Empty(t, m.Err(), "editing clears the error")
}

func TestCustomTypeCommitAndClear(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	openCustomType(m)
	feed(m, session.Runes("before 2025-01-15")...)
	feed(m, session.Confirm)
	assert.Equal(t, []int{0}, m.Visible().Indices)
	assert.Equal(t, "Time: before 2025-01-15 (1 events)", m.Notice())

	openCustomType(m)
	feed(m, session.Runes("clear")...)
	feed(m, session.Confirm)
	assert.Nil(t, m.Criteria().Time)
	assert.Equal(t, []int{0, 1}, m.Visible().Indices)
}

func TestCustomTypeCancel(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))
	openCustomType(m)
	feed(m, session.Runes("today")...)
	eff := feed(m, session.Cancel)
	assert.Nil(t, eff.Criteria)
	assert.Equal(t, session.ModeNormal, m.Mode())
}

func TestClearAll(t *testing.T) {
	m := newMachine(t, timelinetest.Sample(t))

	eff := m.Handle(session.ClearAll)
	assert.Nil(t, eff.Criteria)
	assert.Equal(t, "Nothing to clear", m.Notice())

	feed(m, session.BeginSearch, session.Rune('z'), session.Confirm)
	feed(m, session.BeginActionFilter, session.Confirm)
	feed(m, session.BeginTime, session.Confirm)
	assert.Empty(t, m.Visible().Indices)

	eff = m.Handle(session.ClearAll)
	require.NotNil(t, eff.Criteria)
	assert.True(t, m.Criteria().IsZero())
	assert.Equal(t, []int{0, 1}, m.Visible().Indices)
	assert.Equal(t, session.ModeNormal, m.Mode())
}

func TestTransitionIsPure(t *testing.T) {
	s := timelinetest.Sample(t)
	idx := timeline.BuildIndexes(s, time.UTC)
	env := session.Env{
		ActionTypes: idx.ActionTypes,
		Index:       idx.Time,
		Resolver: timerange.NewResolver(s, timerange.Options{
			Location: time.UTC,
			Now:      func() time.Time { return mockNow },
		}),
		Criteria: filter.Criteria{Terms: []string{"exe"}},
	}

	states := []session.State{
		session.Normal{},
		session.Search{Text: "abc"},
		session.ActionFilter{Cursor: 1},
		session.TimePresets{Cursor: 0},
		session.CustomType{Text: "today"},
	}
	keys := []session.Key{session.Up, session.Down, session.Confirm, session.Cancel, session.Rune('q'), session.Backspace, session.ClearAll}

	for _, st := range states {
		for _, k := range keys {
			s1, e1 := session.Transition(env, st, k)
			s2, e2 := session.Transition(env, st, k)
			assert.Equal(t, s1, s2, "%T %s", st, k)
			assert.Equal(t, e1, e2, "%T %s", st, k)
		}
	}
	assert.Equal(t, []string{"exe"}, env.Criteria.Terms)
}
