package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-timeline/logging"
)

func (m *model) gutterWidth() int {
	return len(fmt.Sprintf("%d", m.data.store.Len()+1)) + 1
}

func (m *model) headerView() string {
	var cells []string
	for _, col := range m.data.header {
		if col.Width <= 0 {
			continue
		}
		cells = append(cells, cellStyle.Width(col.Width).Render(col.Name))
	}
	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return headerStyle.Render(strings.Repeat(" ", m.gutterWidth()) + headerRow)
}

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	styles := DefaultFooterStyles()
	v := m.machine.Visible()

	st := FooterState{
		Mode:        m.machine.Mode(),
		ModeInput:   m.activeCommandLine(),
		FileName:    m.fileName,
		FilterLabel: m.machine.Criteria().Describe(),
		Row:         min(m.cursor+1, v.Len()),
		Shown:       v.Len(),
		TotalRows:   v.Total,
		Legend:      "(? help · / search · a action · t time · x clear · y copy)",
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	} else if v.Truncated() {
		st.StatusMessage = fmt.Sprintf("Showing first %d of %d matching events; narrow the filters to see the rest", v.Len(), v.Total)
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d cur=%d vis=%d-%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.cursor, m.ui.visibleStart, m.ui.visibleEnd)
	}

	return RenderFooter(width, st, styles)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.headerView(), bordered}
	if m.drawerOpen() {
		parts = append(parts, m.drawerView(contentW))
	} else {
		parts = append(parts, detailArea.Width(max(0, contentW-detailArea.GetHorizontalBorderSize())).Render(m.detailPort.View()))
	}
	parts = append(parts, m.footerView(contentW))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) renderRowAt(visibleIdx int) (string, bool) {
	v := m.machine.Visible()
	if visibleIdx < 0 || visibleIdx >= v.Len() {
		return "", false
	}

	selected := visibleIdx == m.cursor
	rowBgStyle := rowStyle
	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	if selected {
		rowBgStyle = rowSelectedStyle
		rowPrefix = bgSeq(lipgloss.Color(rowSelectedBGColor)) + fgSeq(lipgloss.Color(rowSelectedTextFGColor))
	}
	rowSuffix := termenv.CSI + "0m"

	row := m.data.rows[v.Indices[visibleIdx]]
	gutter := rowBgStyle.Render(fmt.Sprintf("%*d ", m.gutterWidth()-1, row.originalIndex))

	terms := m.machine.Criteria().Terms
	var highlight func(string) string
	if len(terms) > 0 {
		highlight = func(s string) string { return highlightMatches(s, terms) }
	}
	line := row.Render(cellStyle, m.data.header, highlight)
	if highlight != nil {
		line = restoreRowStyleAfterReset(line, rowPrefix)
	}
	return gutter + rowPrefix + line + rowSuffix, true
}

// highlightMatches marks every case-insensitive occurrence of any term,
// earliest match first.
func highlightMatches(text string, terms []string) string {
	if text == "" || len(terms) == 0 {
		return text
	}
	lowerText := strings.ToLower(text)
	if len(lowerText) != len(text) {
		// Byte offsets would not line up after folding.
		return text
	}
	var b strings.Builder
	start := 0
	for start < len(text) {
		idx, n := -1, 0
		for _, t := range terms {
			if t == "" {
				continue
			}
			if i := strings.Index(lowerText[start:], t); i >= 0 && (idx < 0 || i < idx || (i == idx && len(t) > n)) {
				idx, n = i, len(t)
			}
		}
		if idx < 0 {
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		b.WriteString(searchHighlight.Render(text[idx : idx+n]))
		start = idx + n
	}
	b.WriteString(text[start:])
	return b.String()
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}

func (m *model) renderViewport() string {
	v := m.machine.Visible()
	if v.Len() == 0 {
		m.ui.visibleStart, m.ui.visibleEnd = 0, -1
		return m.emptyView()
	}
	m.cursor = clamp(m.cursor, 0, v.Len()-1)

	renderedRows, startIdx, endIdx := m.computeVisibleRows(m.cursor, m.viewport.Height)
	m.ui.visibleStart = startIdx
	m.ui.visibleEnd = endIdx
	logging.Debugf("renderViewport: cursor=%d rows %d-%d of %d", m.cursor, startIdx, endIdx, v.Len())
	return strings.Join(renderedRows, "\n")
}

// computeVisibleRows fills the viewport around the cursor, keeping it
// roughly centred and spending unused space above on rows below.
func (m *model) computeVisibleRows(cursor int, viewportHeight int) ([]string, int, int) {
	cursorRow, ok := m.renderRowAt(cursor)
	if !ok {
		return nil, 0, 0
	}
	n := m.machine.Visible().Len()

	heightFree := viewportHeight - 1
	desiredAbove := max(0, heightFree/2)
	startIdx := max(0, cursor-desiredAbove)
	endIdx := min(n-1, startIdx+viewportHeight-1)
	// Near the end, pull the window back up to fill the pane.
	startIdx = max(0, min(startIdx, endIdx-viewportHeight+1))

	rows := make([]string, 0, endIdx-startIdx+1)
	for i := startIdx; i <= endIdx; i++ {
		if i == cursor {
			rows = append(rows, cursorRow)
			continue
		}
		if r, ok := m.renderRowAt(i); ok {
			rows = append(rows, r)
		}
	}
	return rows, startIdx, endIdx
}

func (m *model) emptyView() string {
	c := m.machine.Criteria()
	if c.IsZero() {
		return emptyStyle.Render("The timeline has no events.")
	}
	return emptyStyle.Render(fmt.Sprintf("No events match %s\n\nPress x to clear all filters.", c.Describe()))
}

// detailContent lists every non-empty field of the selected event.
func (m *model) detailContent(width int) string {
	v := m.machine.Visible()
	if m.cursor < 0 || m.cursor >= v.Len() {
		return ""
	}
	r := m.data.record(v.Indices[m.cursor])
	if r == nil {
		return ""
	}
	wrapAt := max(10, width)
	var b strings.Builder
	for _, d := range r.Details() {
		line := detailNameStyle.Render(d.Name+":") + " " + d.Value
		b.WriteString(wordwrap.String(line, wrapAt))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
