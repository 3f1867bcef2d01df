package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(12)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	onlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	offlineStyle = lipgloss.NewStyle().Faint(true)
	valueBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
