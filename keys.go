package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-timeline/session"
)

type Keymap struct {
	Quit         key.Binding
	ForceQuit    key.Binding
	Search       key.Binding
	ActionFilter key.Binding
	TimeFilter   key.Binding
	ClearAll     key.Binding
	RowDown      key.Binding
	RowUp        key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	DetailDown   key.Binding
	DetailUp     key.Binding
	CopyRow      key.Binding
	OpenHelp     key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
	Backspace    key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit from anywhere"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	ActionFilter: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "filter by action type"),
	),
	TimeFilter: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "time range"),
	),
	ClearAll: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear all filters"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/home", "first event"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "last event"),
	),
	DetailDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "scroll details down"),
	),
	DetailUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "scroll details up"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy event to clipboard"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel / back"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "delete"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.Search,
		k.ActionFilter,
		k.TimeFilter,
		k.ClearAll,
		k.RowDown,
		k.RowUp,
		k.PageUp,
		k.PageDown,
		k.Top,
		k.Bottom,
		k.DetailDown,
		k.DetailUp,
		k.CopyRow,
		k.Cancel,
		k.ForceQuit,
	}
}

// sessionKeys maps a terminal key onto logical keys for the given mode. In
// text modes printable keys are always input, one key per rune so pasted
// text arrives whole; elsewhere they are commands. A nil result means the
// state machine has no use for the key.
func sessionKeys(msg tea.KeyMsg, mode session.Mode) []session.Key {
	switch {
	case key.Matches(msg, Keys.Confirm):
		return []session.Key{session.Confirm}
	case key.Matches(msg, Keys.Cancel):
		return []session.Key{session.Cancel}
	}

	switch mode {
	case session.ModeSearch, session.ModeCustomType:
		switch {
		case key.Matches(msg, Keys.Backspace):
			return []session.Key{session.Backspace}
		case msg.Type == tea.KeySpace:
			return []session.Key{session.Rune(' ')}
		case msg.Type == tea.KeyRunes && !msg.Alt:
			return session.Runes(string(msg.Runes))
		}
		return nil

	case session.ModeNormal:
		switch {
		case key.Matches(msg, Keys.Quit):
			return []session.Key{session.Quit}
		case key.Matches(msg, Keys.Search):
			return []session.Key{session.BeginSearch}
		case key.Matches(msg, Keys.ActionFilter):
			return []session.Key{session.BeginActionFilter}
		case key.Matches(msg, Keys.TimeFilter):
			return []session.Key{session.BeginTime}
		case key.Matches(msg, Keys.ClearAll):
			return []session.Key{session.ClearAll}
		}
		return nil

	default: // list modes
		switch {
		case key.Matches(msg, Keys.RowUp):
			return []session.Key{session.Up}
		case key.Matches(msg, Keys.RowDown):
			return []session.Key{session.Down}
		}
		return nil
	}
}
