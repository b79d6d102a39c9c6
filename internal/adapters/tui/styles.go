package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	emptyStyle = lipgloss.NewStyle().PaddingLeft(2).Italic(true).Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const (
	bullet           = "•"
	emptyPlaceholder = "No tasks yet"
)
