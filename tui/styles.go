package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorPrimary = "#2D9CDB"
	colorAccent  = "#F2C94C"
	colorError   = "#EB5757"
	colorMuted   = "#626262"
	colorBorder  = "#2F80ED"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent))

	summaryStyle = lipgloss.NewStyle().
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorError))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(1, 2)
)
