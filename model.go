package main

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-timeline/clipboard"
	"github.com/andareed/siftly-timeline/dialogs"
	"github.com/andareed/siftly-timeline/logging"
	"github.com/andareed/siftly-timeline/session"
	"github.com/andareed/siftly-timeline/timeline"
)

const (
	headerHeight       = 1
	footerHeight       = 2
	detailContentLines = 8
	detailHeight       = detailContentLines + 2
)

type model struct {
	data    dataState
	machine *session.Machine
	ui      uiState

	fileName string

	viewport   viewport.Model
	detailPort viewport.Model
	ready      bool
	cursor     int // index into the visible set

	terminalWidth  int
	terminalHeight int

	input        textinput.Model
	activeDialog dialogs.Dialog

	copyFn func(string) error
}

func newModel(store *timeline.Store, machine *session.Machine) *model {
	in := textinput.New()
	in.CharLimit = 256
	in.Focus()

	return &model{
		data:     newDataState(store),
		machine:  machine,
		fileName: filepath.Base(store.Source()),
		input:    in,
		copyFn:   clipboard.Copy,
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-timeline: initialised with %d events", m.data.store.Len())
	var warnings []string
	if n := m.data.store.Skipped(); n > 0 {
		warnings = append(warnings, plural(n, "malformed row")+" skipped")
	}
	if m.data.store.CapReached() {
		warnings = append(warnings, "row limit reached, later rows not loaded")
	}
	if len(warnings) == 0 {
		return nil
	}
	return m.startNotice(strings.Join(warnings, "; "), "warn", noticeDuration)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.layout()
		m.ready = true
		m.refresh()
		return m, nil
	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

// layout sizes the list and detail panes to the terminal.
func (m *model) layout() {
	frameW := appstyle.GetHorizontalFrameSize() + tableStyle.GetHorizontalFrameSize()
	listW := max(0, m.terminalWidth-frameW)
	listH := m.terminalHeight - headerHeight - tableStyle.GetVerticalFrameSize() - detailHeight - footerHeight
	listH = max(1, listH)

	m.viewport = viewport.New(listW, listH)
	m.detailPort = viewport.New(max(0, listW-detailArea.GetHorizontalPadding()), detailContentLines)
	m.data.header = layoutColumns(m.data.header, max(0, listW-m.gutterWidth()))
}

// refresh re-renders both panes from the current visible set and cursor.
func (m *model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderViewport())
	m.detailPort.SetContent(m.detailContent(m.detailPort.Width))
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}

	if m.machine.Mode() == session.ModeNormal {
		if handled, cmd := m.handleNormalKey(msg); handled {
			m.refresh()
			return m, cmd
		}
	}

	keys := sessionKeys(msg, m.machine.Mode())
	if len(keys) == 0 {
		return m, nil
	}

	var cmds []tea.Cmd
	for _, k := range keys {
		eff := m.machine.Handle(k)
		if eff.Quit {
			return m, tea.Quit
		}
		if eff.Criteria != nil {
			m.cursor = 0
			m.detailPort.SetYOffset(0)
		}
		if eff.Notice != "" {
			cmds = append(cmds, m.startNotice(m.machine.Notice(), "info", noticeDuration))
		}
	}
	m.refresh()
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// handleNormalKey covers the navigation and renderer-only keys that never
// reach the state machine.
func (m *model) handleNormalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	n := m.machine.Visible().Len()
	page := max(1, m.viewport.Height)
	moved := true

	switch {
	case key.Matches(msg, Keys.RowDown):
		m.cursor = min(m.cursor+1, max(0, n-1))
	case key.Matches(msg, Keys.RowUp):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(msg, Keys.PageDown):
		m.cursor = min(m.cursor+page, max(0, n-1))
	case key.Matches(msg, Keys.PageUp):
		m.cursor = max(0, m.cursor-page)
	case key.Matches(msg, Keys.Top):
		m.cursor = 0
	case key.Matches(msg, Keys.Bottom):
		m.cursor = max(0, n-1)
	case key.Matches(msg, Keys.DetailDown):
		m.detailPort.SetYOffset(m.detailPort.YOffset + 1)
		return true, nil
	case key.Matches(msg, Keys.DetailUp):
		m.detailPort.SetYOffset(m.detailPort.YOffset - 1)
		return true, nil
	case key.Matches(msg, Keys.CopyRow):
		return true, m.copySelected()
	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
		return true, nil
	default:
		moved = false
	}
	if moved {
		m.detailPort.SetYOffset(0)
	}
	return moved, nil
}

func (m *model) copySelected() tea.Cmd {
	v := m.machine.Visible()
	if m.cursor < 0 || m.cursor >= v.Len() {
		return m.startNotice("Nothing to copy", "warn", noticeDuration)
	}
	r := m.data.record(v.Indices[m.cursor])
	if err := m.copyFn(eventClipboardText(r)); err != nil {
		logging.Warnf("copy failed: %v", err)
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Event copied to clipboard", "success", noticeDuration)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
