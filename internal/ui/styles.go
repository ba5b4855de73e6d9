package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	itemStyle     = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	quitTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
