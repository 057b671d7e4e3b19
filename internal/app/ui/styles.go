package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/GofMan5/Antigravity-Manager/internal/app/console"
)

const (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorMuted   = lipgloss.Color("7")

	colorError = lipgloss.Color("9")
	colorWarn  = lipgloss.Color("11")
	colorInfo  = lipgloss.Color("10")
	colorDebug = lipgloss.Color("12")
	colorTrace = lipgloss.Color("8")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	targetStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	fieldStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	chipOffStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Faint(true)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(2)

	levelStyles = map[console.Level]lipgloss.Style{
		console.LevelError: lipgloss.NewStyle().Foreground(colorError).Bold(true),
		console.LevelWarn:  lipgloss.NewStyle().Foreground(colorWarn),
		console.LevelInfo:  lipgloss.NewStyle().Foreground(colorInfo),
		console.LevelDebug: lipgloss.NewStyle().Foreground(colorDebug),
		console.LevelTrace: lipgloss.NewStyle().Foreground(colorTrace),
	}
)

// levelStyle returns the style for a severity
func levelStyle(level console.Level) lipgloss.Style {
	if style, ok := levelStyles[level]; ok {
		return style
	}

	return lipgloss.NewStyle()
}
