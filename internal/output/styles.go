package output

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles used by the console report. Colors are dropped automatically when
// the output is not a terminal.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Width(22).
			PaddingLeft(2)

	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Width(16).
			Align(lipgloss.Right)

	cellStyle = lipgloss.NewStyle().
			Width(16).
			Align(lipgloss.Right)

	bulletStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
