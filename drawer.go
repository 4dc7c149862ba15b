package main

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/andareed/siftly-timeline/session"
)

// The drawer takes the detail pane's place, so it shares its height.
const (
	drawerContentHeight = detailContentLines
	drawerItemRows      = drawerContentHeight - 2 // less title and hint
)

func (m *model) drawerOpen() bool {
	return m.machine.Mode() != session.ModeNormal
}

// drawerWindow picks the slice of items to show so the selection stays visible.
func drawerWindow(n, selected, rows int) (int, int) {
	if n <= rows {
		return 0, n
	}
	start := clamp(selected-rows/2, 0, n-rows)
	return start, start + rows
}

func (m *model) drawerView(width int) string {
	mode := m.machine.Mode()
	lines := make([]string, 0, drawerContentHeight)

	switch mode {
	case session.ModeSearch, session.ModeCustomType:
		lines = append(lines, m.inputView())
		if err := m.machine.Err(); err != "" {
			lines = append(lines, drawerErrorStyle.Render(err))
		}
	default:
		lines = append(lines, drawerTitleStyle.Render(m.machine.Prompt()))
		items := m.machine.Items()
		if len(items) == 0 {
			lines = append(lines, drawerHintStyle.Render("(nothing to choose)"))
		}
		sel := m.machine.Selected()
		start, end := drawerWindow(len(items), sel, drawerItemRows)
		for i := start; i < end; i++ {
			if i == sel {
				lines = append(lines, drawerSelectedStyle.Render("› "+items[i]))
			} else {
				lines = append(lines, "  "+items[i])
			}
		}
	}

	for len(lines) < drawerContentHeight-1 {
		lines = append(lines, "")
	}
	lines = append(lines, drawerHintStyle.Render(modeHintsLine(mode)))

	inner := max(0, width-drawerArea.GetHorizontalFrameSize())
	for i := range lines {
		lines[i] = truncate.String(lines[i], uint(inner))
	}
	return drawerArea.Width(max(0, width-drawerArea.GetHorizontalBorderSize())).Render(strings.Join(lines, "\n"))
}

// inputView shows the staged text of Search or CustomType through a
// focused textinput; the machine stays the owner of the text.
func (m *model) inputView() string {
	switch st := m.machine.State().(type) {
	case session.Search:
		m.input.Prompt = "search: "
		m.input.Placeholder = "terms, all must match"
		m.input.SetValue(st.Text)
	case session.CustomType:
		m.input.Prompt = "time: "
		m.input.Placeholder = "last 6h"
		m.input.SetValue(st.Text)
	default:
		return ""
	}
	m.input.PromptStyle = drawerTitleStyle
	return m.input.View()
}
