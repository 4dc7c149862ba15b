package main

import "github.com/andareed/siftly-timeline/session"

func modeBadge(mode session.Mode) string {
	return "[" + mode.String() + "]"
}

func modeHintsLine(mode session.Mode) string {
	switch mode {
	case session.ModeSearch:
		return "enter: apply (empty clears)   esc: cancel"
	case session.ModeActionFilter:
		return "↑/↓: choose   enter: apply   esc: clear action filter"
	case session.ModeTimePresets:
		return "↑/↓: choose   enter: apply   esc: cancel"
	case session.ModeCustomPick:
		return "↑/↓: choose   enter: next   esc: back"
	case session.ModeCustomType:
		return "e.g. last 6h · 2025-01-15 09:00 to 2025-01-15 17:00 · after 2025-01-15 · clear"
	default:
		return idleHintsLine()
	}
}

func idleHintsLine() string {
	return "/ search   a action   t time   x clear   y copy   ? help"
}

// activeCommandLine is the prompt shown in the footer while editing text.
func (m *model) activeCommandLine() string {
	mode := m.machine.Mode()
	switch mode {
	case session.ModeSearch, session.ModeCustomType:
		return modeBadge(mode) + " " + m.machine.Prompt()
	default:
		return ""
	}
}
