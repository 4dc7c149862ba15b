package main

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-timeline/filter"
	"github.com/andareed/siftly-timeline/session"
	"github.com/andareed/siftly-timeline/timeline"
	"github.com/andareed/siftly-timeline/timeline/timelinetest"
	"github.com/andareed/siftly-timeline/timerange"
)

func newTestModel(t *testing.T) (*model, *[]string) {
	t.Helper()
	s := timelinetest.Store(t,
		timelinetest.Event("2025-01-15T08:00:00", "ProcessCreated", "cmd.exe"),
		timelinetest.Event("2025-01-15T09:00:00", "FileCreated", "report.docx"),
		timelinetest.Event("2025-01-15T10:00:00", "ProcessCreated", "powershell.exe"),
		timelinetest.Event("2025-01-16T11:00:00", "ConnectionSuccess", "chrome.exe"),
	)
	resolver := timerange.NewResolver(s, timerange.Options{
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC) },
	})
	machine := session.NewMachine(filter.NewEngine(s, 0), timeline.BuildIndexes(s, time.UTC), resolver)

	m := newModel(s, machine)
	var copied []string
	m.copyFn = func(text string) error {
		copied = append(copied, text)
		return nil
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, &copied
}

func press(m *model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestModelLayout(t *testing.T) {
	m, _ := newTestModel(t)
	require.True(t, m.ready)
	assert.Equal(t, 40-headerHeight-2-detailHeight-footerHeight, m.viewport.Height)
	assert.Equal(t, 0, m.ui.visibleStart)
	assert.Equal(t, 3, m.ui.visibleEnd)
	assert.Contains(t, m.View(), "Event Time")
}

func TestModelNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("j"), runes("j"))
	assert.Equal(t, 2, m.cursor)
	press(m, runes("G"))
	assert.Equal(t, 3, m.cursor)
	press(m, runes("j"))
	assert.Equal(t, 3, m.cursor, "stops at the last event")
	press(m, runes("g"))
	assert.Equal(t, 0, m.cursor)
	press(m, runes("k"))
	assert.Equal(t, 0, m.cursor)
}

func TestModelSearchCommitResetsCursor(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("G"))

	press(m, runes("/"))
	assert.Equal(t, session.ModeSearch, m.machine.Mode())
	assert.True(t, m.drawerOpen())
	press(m, runes("power shell"))
	assert.Contains(t, m.View(), "search: power shell")

	cmd := press(m, enter)
	assert.NotNil(t, cmd, "commit starts a notice timer")
	assert.Equal(t, session.ModeNormal, m.machine.Mode())
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 1, m.machine.Visible().Len())
	assert.Equal(t, `Search: "power shell" (1 events)`, m.ui.noticeMsg)
}

func TestModelEmptyResult(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("/"), runes("zzz"), enter)

	assert.Zero(t, m.machine.Visible().Len())
	assert.Contains(t, m.View(), "No events match")

	press(m, runes("x"))
	assert.Equal(t, 4, m.machine.Visible().Len())
}

func TestModelTimePreset(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("t"))
	assert.Equal(t, session.ModeTimePresets, m.machine.Mode())
	assert.Contains(t, m.View(), "Last 24 hours")

	// Today is 2025-01-16 under the mocked clock.
	press(m, enter)
	assert.Equal(t, 1, m.machine.Visible().Len())
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = newTestModel(t)
	press(m, runes("/"))
	assert.Nil(t, press(m, runes("q")), "q is text while searching")
	cmd = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelCopy(t *testing.T) {
	m, copied := newTestModel(t)
	press(m, runes("j"), runes("y"))

	require.Len(t, *copied, 1)
	assert.Contains(t, (*copied)[0], "Action Type: FileCreated")
	assert.Equal(t, "success", m.ui.noticeType)

	m.copyFn = func(string) error { return errors.New("no clipboard") }
	press(m, runes("y"))
	assert.Equal(t, "error", m.ui.noticeType)
	assert.Contains(t, m.ui.noticeMsg, "no clipboard")
}

func TestModelHelpDialog(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("?"))
	require.NotNil(t, m.activeDialog)
	assert.True(t, m.activeDialog.IsVisible())
	assert.Contains(t, m.View(), "clear all filters")

	press(m, runes("j"))
	assert.Equal(t, 0, m.cursor, "keys go to the dialog while it is open")

	press(m, esc)
	assert.False(t, m.activeDialog.IsVisible())
}

func TestModelNoticeExpiry(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("x")) // "Nothing to clear"
	first := m.ui.noticeSeq
	require.NotEmpty(t, m.ui.noticeMsg)

	press(m, runes("x"))
	m.Update(clearNoticeMsg{id: first})
	assert.NotEmpty(t, m.ui.noticeMsg, "stale timers are ignored")

	m.Update(clearNoticeMsg{id: m.ui.noticeSeq})
	assert.Empty(t, m.ui.noticeMsg)
	assert.Empty(t, m.machine.Notice())
}

func TestHighlightMatches(t *testing.T) {
	assert.Equal(t, "cmd.exe", highlightMatches("cmd.exe", nil))
	out := highlightMatches("PowerShell.exe", []string{"shell", "power"})
	assert.Contains(t, out, searchHighlight.Render("Power"))
	assert.Contains(t, out, searchHighlight.Render("Shell"))
	assert.Contains(t, out, ".exe")
}

func TestDrawerWindow(t *testing.T) {
	start, end := drawerWindow(3, 2, 6)
	assert.Equal(t, []int{0, 3}, []int{start, end})

	start, end = drawerWindow(20, 0, 6)
	assert.Equal(t, []int{0, 6}, []int{start, end})

	start, end = drawerWindow(20, 19, 6)
	assert.Equal(t, []int{14, 20}, []int{start, end})

	start, end = drawerWindow(20, 10, 6)
	assert.Equal(t, []int{7, 13}, []int{start, end})
}
