package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is an overlay drawn over the timeline that takes keys while visible.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
