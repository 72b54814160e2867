package cmd

import "charm.land/lipgloss/v2"

// Terminal styling for the interview loop and report output.
var (
	colorPrimary = lipgloss.Color("#14B8A6")
	colorAccent  = lipgloss.Color("#F97316")
	colorText    = lipgloss.Color("#F8FAFC")
	colorDim     = lipgloss.Color("#94A3B8")
	colorError   = lipgloss.Color("#F43F5E")
	colorBorder  = lipgloss.Color("#334155")

	interviewerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	reportCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)
