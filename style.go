package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
)

var (
	appstyle = lipgloss.NewStyle().Margin(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)
	rowStyle         = lipgloss.NewStyle()
	rowSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor))

	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	detailArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
	detailNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)

	drawerArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
	drawerTitleStyle    = lipgloss.NewStyle().Bold(true)
	drawerSelectedStyle = lipgloss.NewStyle().Reverse(true)
	drawerErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	drawerHintStyle     = lipgloss.NewStyle().Faint(true)

	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0")).Padding(1, 2)

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))
)
